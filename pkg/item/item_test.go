package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	i := New("key", "Brass key", "A small brass key.")

	assert.Equal(t, "key", i.ID())
	assert.Equal(t, "Brass key", i.Name())
	assert.Equal(t, "A small brass key.", i.Description())
	assert.Equal(t, "a", i.CountableNounPrefix())
	assert.True(t, i.Visible())
	assert.True(t, i.Takeable())
	assert.False(t, i.CanTalkTo())
	assert.Empty(t, i.TalkPhrases())
}

func TestItem_MidSentenceCasedName(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		override string
		expected string
	}{
		{name: "single word", itemName: "Lamp", expected: "lamp"},
		{name: "only first word is lowered", itemName: "Brass Key", expected: "brass Key"},
		{name: "already lower", itemName: "rusty nail", expected: "rusty nail"},
		{name: "empty name", itemName: "", expected: ""},
		{name: "override wins", itemName: "Bob", override: "Bob", expected: "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New("", tt.itemName, "")
			if tt.override != "" {
				i.SetMidSentenceCasedName(tt.override)
			}
			assert.Equal(t, tt.expected, i.MidSentenceCasedName())
		})
	}
}

func TestItem_MidSentenceNameFollowsRename(t *testing.T) {
	i := New("", "Lamp", "")
	i.SetName("Candle")
	assert.Equal(t, "candle", i.MidSentenceCasedName())
}

func TestItem_CountableNounPrefix(t *testing.T) {
	i := New("", "apple", "")
	i.SetCountableNounPrefix("an")
	assert.Equal(t, "an", i.CountableNounPrefix())

	i.SetCountableNounPrefix("")
	assert.Equal(t, DefaultCountableNounPrefix, i.CountableNounPrefix())
}

func TestItem_AddTalkPhraseMakesItemTalkable(t *testing.T) {
	i := New("parrot", "Parrot", "")
	i.AddTalkPhrase("Hello", "Pieces of eight!")

	assert.True(t, i.CanTalkTo())
	assert.Equal(t, []TalkPhrase{{Say: "Hello", Response: "Pieces of eight!"}}, i.TalkPhrases())
}

func TestItem_TalkPhrasesReturnsCopy(t *testing.T) {
	i := New("parrot", "Parrot", "")
	i.AddTalkPhrase("Hello", "Squawk")

	phrases := i.TalkPhrases()
	phrases[0].Say = "changed"

	assert.Equal(t, "Hello", i.TalkPhrases()[0].Say)
}

func TestItem_Equal(t *testing.T) {
	assert.True(t, New("", "", "").Equal(New("", "", "")), "two empty items should be equal")
	assert.True(t, New("a", "Lamp", "lit").Equal(New("a", "Lamp", "lit")))
	assert.False(t, New("a", "Lamp", "lit").Equal(New("a", "Lamp", "unlit")))

	hidden := New("a", "Lamp", "lit")
	hidden.SetVisible(false)
	assert.False(t, New("a", "Lamp", "lit").Equal(hidden))

	talker := New("a", "Lamp", "lit")
	talker.AddTalkPhrase("hi", "hello")
	assert.False(t, New("a", "Lamp", "lit").Equal(talker))

	var nilItem *Item
	assert.False(t, New("", "", "").Equal(nilItem))
	assert.True(t, nilItem.Equal(nil))
}
