package navigation

import "github.com/jwebster45206/text-adventure/pkg/world"

// MoveHandler moves the player through an exit.
type MoveHandler interface {
	MoveThroughExit(e *world.Exit)
}

// Pad shows the current exits and turns touches into moves.
type Pad struct {
	exits   []*world.Exit
	handler MoveHandler
}

func NewPad(handler MoveHandler) *Pad {
	return &Pad{handler: handler}
}

// ShowExits replaces the exits on the pad.
func (p *Pad) ShowExits(exits []*world.Exit) {
	p.exits = exits
}

// Assignment returns the slot assignment for the exits shown.
func (p *Pad) Assignment() Assignment {
	return AssignDirections(p.exits)
}

// Labels returns the label per slot, indexed by Slot.
func (p *Pad) Labels() [NoSlot]string {
	var labels [NoSlot]string
	a := p.Assignment()
	for _, s := range fallbackOrder {
		labels[s] = a.Label(s)
	}
	return labels
}

// Dispatch sends the touched exit to the handler and reports whether a
// move was made.
func (p *Pad) Dispatch(t Touch, width, height int) bool {
	e, ok := ExitForTouch(p.exits, width, height, t)
	if !ok || p.handler == nil {
		return false
	}
	p.handler.MoveThroughExit(e)
	return true
}

// Select moves through the exit in the slot, if any.
func (p *Pad) Select(s Slot) bool {
	e := p.Assignment().Exit(s)
	if e == nil || p.handler == nil {
		return false
	}
	p.handler.MoveThroughExit(e)
	return true
}
