package world

import (
	"fmt"
	"strings"
)

// DirectionHint is the screen side an exit would like to be shown on.
type DirectionHint int

const (
	None DirectionHint = iota
	North
	South
	East
	West
)

func (d DirectionHint) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "none"
	}
}

// ParseDirectionHint accepts the names produced by String, case-insensitively.
// An empty string is None.
func ParseDirectionHint(s string) (DirectionHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return None, fmt.Errorf("unknown direction hint %q", s)
}

// Exit is a one-way connection from a location to a destination location.
// Exits do not change after they are built.
type Exit struct {
	label       string
	destination string
	hint        DirectionHint
	visible     bool
}

// NewExit creates a visible exit with no destination or direction hint.
func NewExit(label string) *Exit {
	return &Exit{label: label, visible: true}
}

// NewExitTo creates a visible exit leading to the destination location id.
func NewExitTo(label, destination string, hint DirectionHint) *Exit {
	return &Exit{
		label:       label,
		destination: destination,
		hint:        hint,
		visible:     true,
	}
}

// WithVisible returns the exit with its visibility set. Use it while building.
func (e *Exit) WithVisible(visible bool) *Exit {
	e.visible = visible
	return e
}

func (e *Exit) Label() string { return e.label }

func (e *Exit) Destination() string { return e.destination }

func (e *Exit) DirectionHint() DirectionHint { return e.hint }

func (e *Exit) Visible() bool { return e.visible }

func (e *Exit) String() string { return e.label }
