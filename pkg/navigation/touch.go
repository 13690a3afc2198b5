package navigation

import "github.com/jwebster45206/text-adventure/pkg/world"

// TouchPhase distinguishes the press of a touch from its release.
type TouchPhase int

const (
	TouchDown TouchPhase = iota
	TouchUp
)

// Touch is a point on the pad, relative to its top-left corner.
type Touch struct {
	X, Y  int
	Phase TouchPhase
}

// QuadrantAt splits a width by height rectangle along both diagonals and
// returns the triangle containing (x, y). Points on a diagonal belong to
// Top, then Bottom.
func QuadrantAt(width, height, x, y int) Slot {
	if width <= 0 || height <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return NoSlot
	}

	// a < 0 above the top-left to bottom-right diagonal,
	// b < 0 above the top-right to bottom-left diagonal.
	a := y*width - x*height
	b := y*width + x*height - width*height

	switch {
	case a <= 0 && b <= 0:
		return Top
	case a >= 0 && b >= 0:
		return Bottom
	case a < 0:
		return Right
	default:
		return Left
	}
}

// ExitForTouch returns the exit assigned to the touched quadrant. Only a
// release selects anything.
func ExitForTouch(exits []*world.Exit, width, height int, t Touch) (*world.Exit, bool) {
	if t.Phase != TouchUp {
		return nil, false
	}
	s := QuadrantAt(width, height, t.X, t.Y)
	if s == NoSlot {
		return nil, false
	}
	e := AssignDirections(exits).Exit(s)
	return e, e != nil
}
