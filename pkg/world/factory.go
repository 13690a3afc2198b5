package world

import (
	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/item"
)

//go:generate go tool mockgen -destination=./mocks/action_factory_mock.go -package=mocks . ActionFactory

// ActionFactory builds the actions a location offers for its items.
// action.Factory is the standard implementation.
type ActionFactory interface {
	CreateTakeAnItemAction(items []*item.Item, inventory action.Inventory, location action.ItemHolder) action.Action
	CreateExamineAnItemAction(items []*item.Item) action.Action
	CreateTalkToAction(i *item.Item) action.Action
}

var _ ActionFactory = (*action.Factory)(nil)
