package action

import "github.com/jwebster45206/text-adventure/pkg/item"

// Factory is the standard action factory used by locations.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateTakeAnItemAction(items []*item.Item, inventory Inventory, location ItemHolder) Action {
	return NewTakeAnItem(items, inventory, location)
}

func (f *Factory) CreateExamineAnItemAction(items []*item.Item) Action {
	return NewExamineAnItem(items)
}

func (f *Factory) CreateTalkToAction(i *item.Item) Action {
	return NewTalkTo(i)
}
