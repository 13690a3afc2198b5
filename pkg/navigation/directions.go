// Package navigation places a location's exits on the four sides of a
// touch pad and resolves a touch on the pad back to an exit.
package navigation

import "github.com/jwebster45206/text-adventure/pkg/world"

// Slot is one side of the pad.
type Slot int

const (
	Top Slot = iota
	Bottom
	Right
	Left
	NoSlot
)

// fallbackOrder is the order in which unhinted exits fill free slots.
var fallbackOrder = [...]Slot{Top, Bottom, Right, Left}

// Slots returns the four real slots in fallback order.
func Slots() []Slot {
	return fallbackOrder[:]
}

func (s Slot) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "none"
	}
}

func slotForHint(h world.DirectionHint) Slot {
	switch h {
	case world.North:
		return Top
	case world.South:
		return Bottom
	case world.East:
		return Right
	case world.West:
		return Left
	default:
		return NoSlot
	}
}

// Assignment maps each slot to at most one exit.
type Assignment struct {
	exits [NoSlot]*world.Exit
}

// Exit returns the exit in the slot, or nil when the slot is empty.
func (a Assignment) Exit(s Slot) *world.Exit {
	if s < Top || s >= NoSlot {
		return nil
	}
	return a.exits[s]
}

// Label returns the label of the exit in the slot, or "" when it is empty.
func (a Assignment) Label(s Slot) string {
	if e := a.Exit(s); e != nil {
		return e.Label()
	}
	return ""
}

// SlotOf returns the slot holding e, or NoSlot.
func (a Assignment) SlotOf(e *world.Exit) Slot {
	for _, s := range fallbackOrder {
		if e != nil && a.exits[s] == e {
			return s
		}
	}
	return NoSlot
}

// AssignDirections gives every slot at most one exit. Hinted exits claim
// their slot first, with earlier exits winning a contested slot. The
// remaining exits then fill free slots in fallback order. Invisible exits
// and exits beyond the fourth are left out.
func AssignDirections(exits []*world.Exit) Assignment {
	var a Assignment
	placed := make(map[*world.Exit]bool, len(exits))

	for _, e := range exits {
		if e == nil || !e.Visible() {
			continue
		}
		s := slotForHint(e.DirectionHint())
		if s == NoSlot || a.exits[s] != nil {
			continue
		}
		a.exits[s] = e
		placed[e] = true
	}

	next := 0
	for _, e := range exits {
		if e == nil || !e.Visible() || placed[e] {
			continue
		}
		for next < len(fallbackOrder) && a.exits[fallbackOrder[next]] != nil {
			next++
		}
		if next == len(fallbackOrder) {
			break
		}
		a.exits[fallbackOrder[next]] = e
		placed[e] = true
	}

	return a
}
