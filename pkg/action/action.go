// Package action holds the things a player can choose to do in a location.
//
// Action is a closed set of variants. Some variants are not triggered
// directly; they ask the player to choose one of their follow-up actions
// instead (e.g. "Take an item" followed by "Take lamp").
package action

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/jwebster45206/text-adventure/pkg/item"
)

// Action is a player-choosable operation.
type Action interface {
	Label() string
	Trigger()
	UserMustChooseFollowUpAction() bool
	FollowUpActions() []Action
	UserTextAvailable() bool
	UserText() string

	// Equal compares actions by value, not identity.
	Equal(other Action) bool
	// Hash is equal for any two actions that are Equal.
	Hash() uint64

	isAction()
}

// Inventory receives items the player takes.
type Inventory interface {
	AddItem(i *item.Item)
}

// ItemHolder is where an item is taken from.
type ItemHolder interface {
	RemoveItem(i *item.Item)
}

type kind byte

const (
	kindTakeAnItem kind = iota + 1
	kindTakeSpecificItem
	kindExamineAnItem
	kindExamineSpecificItem
	kindTalkTo
	kindSay
)

func equal(a, b Action) bool {
	switch a := a.(type) {
	case *TakeAnItem:
		b, ok := b.(*TakeAnItem)
		return ok && itemsEqual(a.items, b.items)
	case *TakeSpecificItem:
		b, ok := b.(*TakeSpecificItem)
		return ok && a.item.Equal(b.item)
	case *ExamineAnItem:
		b, ok := b.(*ExamineAnItem)
		return ok && itemsEqual(a.items, b.items)
	case *ExamineSpecificItem:
		b, ok := b.(*ExamineSpecificItem)
		return ok && a.item.Equal(b.item)
	case *TalkTo:
		b, ok := b.(*TalkTo)
		return ok && a.item.Equal(b.item)
	case *Say:
		b, ok := b.(*Say)
		return ok && a.phrase == b.phrase && a.item.Equal(b.item)
	}
	return false
}

func hash(a Action) uint64 {
	d := xxhash.New()
	writeItems := func(k kind, items ...*item.Item) {
		_, _ = d.Write([]byte{byte(k)})
		for _, i := range items {
			writeItem(d, i)
		}
	}

	switch a := a.(type) {
	case *TakeAnItem:
		writeItems(kindTakeAnItem, a.items...)
	case *TakeSpecificItem:
		writeItems(kindTakeSpecificItem, a.item)
	case *ExamineAnItem:
		writeItems(kindExamineAnItem, a.items...)
	case *ExamineSpecificItem:
		writeItems(kindExamineSpecificItem, a.item)
	case *TalkTo:
		writeItems(kindTalkTo, a.item)
	case *Say:
		writeItems(kindSay, a.item)
		_, _ = d.WriteString(a.phrase.Say)
		_, _ = d.WriteString(a.phrase.Response)
	}
	return d.Sum64()
}

func writeItem(d *xxhash.Digest, i *item.Item) {
	if i == nil {
		_, _ = d.WriteString("\x00nil")
		return
	}
	for _, field := range []string{i.ID(), i.Name(), i.Description(), strconv.Itoa(len(i.TalkPhrases()))} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
}

func itemsEqual(a, b []*item.Item) bool {
	return slices.EqualFunc(a, b, func(x, y *item.Item) bool { return x.Equal(y) })
}
