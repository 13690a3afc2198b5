package action

import "github.com/jwebster45206/text-adventure/pkg/item"

// TalkTo opens a conversation with an item; the player then picks a phrase.
type TalkTo struct {
	item *item.Item
}

func NewTalkTo(i *item.Item) *TalkTo {
	return &TalkTo{item: i}
}

func (a *TalkTo) Item() *item.Item { return a.item }

func (a *TalkTo) Label() string { return "Talk to " + a.item.MidSentenceCasedName() }

func (a *TalkTo) Trigger() {}

func (a *TalkTo) UserMustChooseFollowUpAction() bool { return true }

func (a *TalkTo) FollowUpActions() []Action {
	phrases := a.item.TalkPhrases()
	actions := make([]Action, 0, len(phrases))
	for _, p := range phrases {
		actions = append(actions, NewSay(a.item, p))
	}
	return actions
}

func (a *TalkTo) UserTextAvailable() bool { return false }

func (a *TalkTo) UserText() string { return "" }

func (a *TalkTo) Equal(other Action) bool { return equal(a, other) }

func (a *TalkTo) Hash() uint64 { return hash(a) }

func (a *TalkTo) isAction() {}

// Say is one line of conversation; the reply is shown as user text.
type Say struct {
	item   *item.Item
	phrase item.TalkPhrase
}

func NewSay(i *item.Item, phrase item.TalkPhrase) *Say {
	return &Say{item: i, phrase: phrase}
}

func (a *Say) Label() string { return a.phrase.Say }

func (a *Say) Trigger() {}

func (a *Say) UserMustChooseFollowUpAction() bool { return false }

func (a *Say) FollowUpActions() []Action { return nil }

func (a *Say) UserTextAvailable() bool { return a.phrase.Response != "" }

func (a *Say) UserText() string { return a.phrase.Response }

func (a *Say) Equal(other Action) bool { return equal(a, other) }

func (a *Say) Hash() uint64 { return hash(a) }

func (a *Say) isAction() {}
