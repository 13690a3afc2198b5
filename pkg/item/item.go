package item

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCountableNounPrefix is used when an item has no explicit prefix.
const DefaultCountableNounPrefix = "a"

// TalkPhrase is one line the player can say to an item, and what it says back.
type TalkPhrase struct {
	Say      string `yaml:"say"`
	Response string `yaml:"response"`
}

// Item is anything in a location the player can look at, pick up or talk to.
type Item struct {
	id              string
	name            string
	description     string
	prefix          string
	midSentenceName string // explicit override; derived from name when empty
	visible         bool
	takeable        bool
	canTalkTo       bool
	talkPhrases     []TalkPhrase
}

// New creates a visible, takeable item.
func New(id, name, description string) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		prefix:      DefaultCountableNounPrefix,
		visible:     true,
		takeable:    true,
	}
}

func (i *Item) ID() string { return i.id }

func (i *Item) Name() string { return i.name }

func (i *Item) SetName(name string) { i.name = name }

func (i *Item) Description() string { return i.description }

func (i *Item) SetDescription(description string) { i.description = description }

// CountableNounPrefix is the article used in sentences, e.g. "a", "an" or "some".
func (i *Item) CountableNounPrefix() string {
	if i.prefix == "" {
		return DefaultCountableNounPrefix
	}
	return i.prefix
}

func (i *Item) SetCountableNounPrefix(prefix string) { i.prefix = prefix }

// MidSentenceCasedName is the name as it reads inside a sentence.
// Unless overridden, the first word of the name is lower-cased.
func (i *Item) MidSentenceCasedName() string {
	if i.midSentenceName != "" {
		return i.midSentenceName
	}
	first, rest, found := strings.Cut(i.name, " ")
	first = cases.Lower(language.English).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}

// SetMidSentenceCasedName overrides the derived mid-sentence name, e.g. for proper nouns.
func (i *Item) SetMidSentenceCasedName(name string) { i.midSentenceName = name }

func (i *Item) Visible() bool { return i.visible }

func (i *Item) SetVisible(visible bool) { i.visible = visible }

func (i *Item) Takeable() bool { return i.takeable }

func (i *Item) SetTakeable(takeable bool) { i.takeable = takeable }

func (i *Item) CanTalkTo() bool { return i.canTalkTo }

func (i *Item) SetCanTalkTo(canTalkTo bool) { i.canTalkTo = canTalkTo }

// TalkPhrases returns a copy of the phrases the player can say to this item.
func (i *Item) TalkPhrases() []TalkPhrase {
	return slices.Clone(i.talkPhrases)
}

// AddTalkPhrase adds a conversation line and makes the item talkable.
func (i *Item) AddTalkPhrase(say, response string) {
	i.talkPhrases = append(i.talkPhrases, TalkPhrase{Say: say, Response: response})
	i.canTalkTo = true
}

// Equal reports whether two items hold the same values.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id &&
		i.name == other.name &&
		i.description == other.description &&
		i.CountableNounPrefix() == other.CountableNounPrefix() &&
		i.midSentenceName == other.midSentenceName &&
		i.visible == other.visible &&
		i.takeable == other.takeable &&
		i.canTalkTo == other.canTalkTo &&
		slices.Equal(i.talkPhrases, other.talkPhrases)
}
