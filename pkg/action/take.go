package action

import (
	"slices"

	"github.com/jwebster45206/text-adventure/pkg/item"
)

// TakeAnItem asks the player which of several items to take.
type TakeAnItem struct {
	items     []*item.Item
	inventory Inventory
	location  ItemHolder
}

// NewTakeAnItem builds the take action and one TakeSpecificItem follow-up per item.
func NewTakeAnItem(items []*item.Item, inventory Inventory, location ItemHolder) *TakeAnItem {
	return &TakeAnItem{
		items:     slices.Clone(items),
		inventory: inventory,
		location:  location,
	}
}

// Items returns the candidate items.
func (a *TakeAnItem) Items() []*item.Item { return slices.Clone(a.items) }

func (a *TakeAnItem) Label() string { return "Take an item" }

func (a *TakeAnItem) Trigger() {}

func (a *TakeAnItem) UserMustChooseFollowUpAction() bool { return true }

func (a *TakeAnItem) FollowUpActions() []Action {
	actions := make([]Action, 0, len(a.items))
	for _, i := range a.items {
		actions = append(actions, NewTakeSpecificItem(i, a.inventory, a.location))
	}
	return actions
}

func (a *TakeAnItem) UserTextAvailable() bool { return false }

func (a *TakeAnItem) UserText() string { return "" }

func (a *TakeAnItem) Equal(other Action) bool { return equal(a, other) }

func (a *TakeAnItem) Hash() uint64 { return hash(a) }

func (a *TakeAnItem) isAction() {}

// TakeSpecificItem moves one item from a location into the inventory.
type TakeSpecificItem struct {
	item      *item.Item
	inventory Inventory
	location  ItemHolder
}

func NewTakeSpecificItem(i *item.Item, inventory Inventory, location ItemHolder) *TakeSpecificItem {
	return &TakeSpecificItem{
		item:      i,
		inventory: inventory,
		location:  location,
	}
}

// Item returns the item this action takes.
func (a *TakeSpecificItem) Item() *item.Item { return a.item }

func (a *TakeSpecificItem) Label() string { return "Take " + a.item.Name() }

// Trigger does nothing without an inventory, so the item is never lost.
func (a *TakeSpecificItem) Trigger() {
	if a.inventory == nil || a.item == nil {
		return
	}
	if a.location != nil {
		a.location.RemoveItem(a.item)
	}
	a.inventory.AddItem(a.item)
}

func (a *TakeSpecificItem) UserMustChooseFollowUpAction() bool { return false }

func (a *TakeSpecificItem) FollowUpActions() []Action { return nil }

func (a *TakeSpecificItem) UserTextAvailable() bool { return false }

func (a *TakeSpecificItem) UserText() string { return "" }

func (a *TakeSpecificItem) Equal(other Action) bool { return equal(a, other) }

func (a *TakeSpecificItem) Hash() uint64 { return hash(a) }

func (a *TakeSpecificItem) isAction() {}
