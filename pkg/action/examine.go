package action

import (
	"slices"

	"github.com/jwebster45206/text-adventure/pkg/item"
)

// ExamineAnItem asks the player which visible item to look at.
type ExamineAnItem struct {
	items []*item.Item
}

func NewExamineAnItem(items []*item.Item) *ExamineAnItem {
	return &ExamineAnItem{items: slices.Clone(items)}
}

func (a *ExamineAnItem) Items() []*item.Item { return slices.Clone(a.items) }

func (a *ExamineAnItem) Label() string { return "Examine an item" }

func (a *ExamineAnItem) Trigger() {}

func (a *ExamineAnItem) UserMustChooseFollowUpAction() bool { return true }

func (a *ExamineAnItem) FollowUpActions() []Action {
	actions := make([]Action, 0, len(a.items))
	for _, i := range a.items {
		actions = append(actions, NewExamineSpecificItem(i))
	}
	return actions
}

func (a *ExamineAnItem) UserTextAvailable() bool { return false }

func (a *ExamineAnItem) UserText() string { return "" }

func (a *ExamineAnItem) Equal(other Action) bool { return equal(a, other) }

func (a *ExamineAnItem) Hash() uint64 { return hash(a) }

func (a *ExamineAnItem) isAction() {}

// ExamineSpecificItem shows one item's description.
type ExamineSpecificItem struct {
	item *item.Item
}

func NewExamineSpecificItem(i *item.Item) *ExamineSpecificItem {
	return &ExamineSpecificItem{item: i}
}

func (a *ExamineSpecificItem) Item() *item.Item { return a.item }

func (a *ExamineSpecificItem) Label() string { return "Examine " + a.item.Name() }

func (a *ExamineSpecificItem) Trigger() {}

func (a *ExamineSpecificItem) UserMustChooseFollowUpAction() bool { return false }

func (a *ExamineSpecificItem) FollowUpActions() []Action { return nil }

func (a *ExamineSpecificItem) UserTextAvailable() bool { return true }

func (a *ExamineSpecificItem) UserText() string { return a.item.Description() }

func (a *ExamineSpecificItem) Equal(other Action) bool { return equal(a, other) }

func (a *ExamineSpecificItem) Hash() uint64 { return hash(a) }

func (a *ExamineSpecificItem) isAction() {}
