// Package world holds the locations the player moves between, the exits
// that connect them and the items found in them.
package world

import (
	"slices"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/item"
)

// Location is a place in the world with exits and items.
type Location struct {
	id          string
	areaID      string
	description string
	exits       []*Exit
	items       []*item.Item
	x, y        int
	inventory   action.Inventory
	factory     ActionFactory
}

var _ action.ItemHolder = (*Location)(nil)

// NewLocation creates a location. The inventory receives taken items and
// the factory builds the location's actions; either may be nil.
func NewLocation(id, description string, inventory action.Inventory, factory ActionFactory) *Location {
	return &Location{
		id:          id,
		description: description,
		inventory:   inventory,
		factory:     factory,
	}
}

func (l *Location) ID() string { return l.id }

// AreaID groups locations for exploration tracking.
func (l *Location) AreaID() string { return l.areaID }

func (l *Location) SetAreaID(areaID string) { l.areaID = areaID }

func (l *Location) X() int { return l.x }

func (l *Location) Y() int { return l.y }

func (l *Location) SetX(x int) { l.x = x }

func (l *Location) SetY(y int) { l.y = y }

func (l *Location) AddExit(e *Exit) {
	if e == nil {
		return
	}
	l.exits = append(l.exits, e)
}

// VisibleExits returns visible exits in the order they were added.
func (l *Location) VisibleExits() []*Exit {
	var exits []*Exit
	for _, e := range l.exits {
		if e.Visible() {
			exits = append(exits, e)
		}
	}
	return exits
}

// Exitable reports whether the exit belongs to this location and can be used.
func (l *Location) Exitable(e *Exit) bool {
	return e != nil && e.Visible() && slices.Contains(l.exits, e)
}

// ExitDestinationFor returns the destination of one of this location's exits,
// or "" for an exit that was never added.
func (l *Location) ExitDestinationFor(e *Exit) string {
	if e == nil || !slices.Contains(l.exits, e) {
		return ""
	}
	return e.Destination()
}

func (l *Location) AddItem(i *item.Item) {
	if i == nil {
		return
	}
	l.items = append(l.items, i)
}

// RemoveItem removes the given item, if present.
func (l *Location) RemoveItem(i *item.Item) {
	if idx := slices.Index(l.items, i); idx >= 0 {
		l.items = slices.Delete(l.items, idx, idx+1)
	}
}

// Items returns all items in insertion order, visible or not.
func (l *Location) Items() []*item.Item {
	return slices.Clone(l.items)
}

func (l *Location) VisibleItems() []*item.Item {
	var items []*item.Item
	for _, i := range l.items {
		if i.Visible() {
			items = append(items, i)
		}
	}
	return items
}

// Description is the base description followed by a sentence listing the
// visible items, e.g. "There is a lamp, a rope and a key here.\n".
func (l *Location) Description() string {
	visible := l.VisibleItems()
	if len(visible) == 0 {
		return l.description
	}

	names := make([]string, len(visible))
	for n, i := range visible {
		names[n] = i.CountableNounPrefix() + " " + i.MidSentenceCasedName()
	}

	var joined string
	if len(names) == 1 {
		joined = names[0]
	} else {
		joined = strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}

	return l.description + "\n" + "There is " + joined + " here.\n"
}

// Actions builds the actions available here, in order: take, examine, then
// one talk-to per talkable item. It is rebuilt on every call.
func (l *Location) Actions() ([]action.Action, error) {
	visible := l.VisibleItems()
	if len(visible) == 0 {
		return nil, nil
	}
	if l.factory == nil {
		return nil, &MissingCollaboratorError{LocationID: l.id, Collaborator: "action factory"}
	}

	var actions []action.Action

	var takeable []*item.Item
	for _, i := range visible {
		if i.Takeable() {
			takeable = append(takeable, i)
		}
	}
	if len(takeable) > 0 {
		actions = append(actions, l.factory.CreateTakeAnItemAction(takeable, l.inventory, l))
	}

	actions = append(actions, l.factory.CreateExamineAnItemAction(visible))

	for _, i := range visible {
		if i.CanTalkTo() {
			actions = append(actions, l.factory.CreateTalkToAction(i))
		}
	}

	return actions, nil
}
