package world

import (
	"testing"

	"github.com/jwebster45206/text-adventure/pkg/item"
	"github.com/stretchr/testify/assert"
)

func TestInventory(t *testing.T) {
	inv := NewInventory()
	assert.Empty(t, inv.Items())

	lamp := item.New("lamp", "Lamp", "")
	rope := item.New("rope", "Rope", "")
	inv.AddItem(lamp)
	inv.AddItem(rope)
	inv.AddItem(nil)

	assert.Equal(t, []*item.Item{lamp, rope}, inv.Items())
	assert.True(t, inv.Contains(lamp))

	inv.RemoveItem(lamp)
	assert.False(t, inv.Contains(lamp))
	assert.Equal(t, []*item.Item{rope}, inv.Items())
}

func TestInventory_ItemsIsACopy(t *testing.T) {
	inv := NewInventory()
	inv.AddItem(item.New("lamp", "Lamp", ""))

	items := inv.Items()
	items[0] = nil
	assert.NotNil(t, inv.Items()[0])
}
