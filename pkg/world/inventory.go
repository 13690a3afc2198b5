package world

import (
	"slices"

	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/item"
)

// Inventory is the ordered list of items the player carries.
type Inventory struct {
	items []*item.Item
}

var _ action.Inventory = (*Inventory)(nil)

func NewInventory() *Inventory {
	return &Inventory{}
}

func (inv *Inventory) AddItem(i *item.Item) {
	if i == nil {
		return
	}
	inv.items = append(inv.items, i)
}

func (inv *Inventory) RemoveItem(i *item.Item) {
	if idx := slices.Index(inv.items, i); idx >= 0 {
		inv.items = slices.Delete(inv.items, idx, idx+1)
	}
}

// Items returns the carried items in the order they were picked up.
func (inv *Inventory) Items() []*item.Item {
	return slices.Clone(inv.items)
}

func (inv *Inventory) Contains(i *item.Item) bool {
	return slices.Contains(inv.items, i)
}
