package world

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/item"
	"pgregory.net/rapid"
)

// recordingFactory builds real actions and remembers what it was asked for.
type recordingFactory struct {
	action.Factory
	takeItems    [][]*item.Item
	examineItems [][]*item.Item
	talkedTo     []*item.Item
}

func (f *recordingFactory) CreateTakeAnItemAction(items []*item.Item, inventory action.Inventory, location action.ItemHolder) action.Action {
	f.takeItems = append(f.takeItems, items)
	return f.Factory.CreateTakeAnItemAction(items, inventory, location)
}

func (f *recordingFactory) CreateExamineAnItemAction(items []*item.Item) action.Action {
	f.examineItems = append(f.examineItems, items)
	return f.Factory.CreateExamineAnItemAction(items)
}

func (f *recordingFactory) CreateTalkToAction(i *item.Item) action.Action {
	f.talkedTo = append(f.talkedTo, i)
	return f.Factory.CreateTalkToAction(i)
}

func drawItem(t *rapid.T, n int) *item.Item {
	i := item.New(fmt.Sprintf("item%d", n), fmt.Sprintf("Item%d", n), "")
	i.SetVisible(rapid.Bool().Draw(t, fmt.Sprintf("visible%d", n)))
	i.SetTakeable(rapid.Bool().Draw(t, fmt.Sprintf("takeable%d", n)))
	i.SetCanTalkTo(rapid.Bool().Draw(t, fmt.Sprintf("talkable%d", n)))
	return i
}

func TestLocation_VisibleExitsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := createLocation()
		flags := rapid.SliceOfN(rapid.Bool(), 0, 12).Draw(t, "visible")

		var added []*Exit
		for n, visible := range flags {
			e := NewExit(fmt.Sprintf("exit%d", n)).WithVisible(visible)
			l.AddExit(e)
			added = append(added, e)
		}

		var want []*Exit
		for _, e := range added {
			if e.Visible() {
				want = append(want, e)
			}
		}

		got := l.VisibleExits()
		if !slices.Equal(got, want) {
			t.Fatalf("visible exits %v, want %v", got, want)
		}
		for _, e := range added {
			if l.Exitable(e) != e.Visible() {
				t.Fatalf("exit %s exitable=%v visible=%v", e, l.Exitable(e), e.Visible())
			}
		}
	})
}

func TestLocation_ActionsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		factory := &recordingFactory{}
		l := NewLocation("here", "Here.", NewInventory(), factory)

		count := rapid.IntRange(0, 8).Draw(t, "count")
		for n := range count {
			l.AddItem(drawItem(t, n))
		}

		visible := l.VisibleItems()
		actions, err := l.Actions()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		anyTakeable := slices.ContainsFunc(visible, (*item.Item).Takeable)
		if anyTakeable != (len(factory.takeItems) == 1) {
			t.Fatalf("take action built %d times with takeable=%v", len(factory.takeItems), anyTakeable)
		}
		if (len(visible) > 0) != (len(factory.examineItems) == 1) {
			t.Fatalf("examine action built %d times for %d visible items", len(factory.examineItems), len(visible))
		}
		if len(factory.examineItems) == 1 && !slices.Equal(factory.examineItems[0], visible) {
			t.Fatalf("examine action over %v, want %v", factory.examineItems[0], visible)
		}

		var talkable []*item.Item
		for _, i := range visible {
			if i.CanTalkTo() {
				talkable = append(talkable, i)
			}
		}
		if !slices.Equal(factory.talkedTo, talkable) {
			t.Fatalf("talk-to actions for %v, want %v", factory.talkedTo, talkable)
		}

		want := len(factory.takeItems) + len(factory.examineItems) + len(factory.talkedTo)
		if len(actions) != want {
			t.Fatalf("got %d actions, want %d", len(actions), want)
		}
	})
}

func TestLocation_DescriptionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewLocation("here", "Here.", nil, nil)
		count := rapid.IntRange(0, 6).Draw(t, "count")
		for n := range count {
			l.AddItem(drawItem(t, n))
		}

		desc := l.Description()
		visible := l.VisibleItems()
		if len(visible) == 0 {
			if desc != "Here." {
				t.Fatalf("description %q, want base only", desc)
			}
			return
		}
		if !strings.HasPrefix(desc, "Here.\nThere is ") || !strings.HasSuffix(desc, " here.\n") {
			t.Fatalf("unexpected description shape %q", desc)
		}
		for _, i := range l.Items() {
			mentioned := strings.Contains(desc, "a "+i.MidSentenceCasedName()+" ") ||
				strings.Contains(desc, "a "+i.MidSentenceCasedName()+",")
			if mentioned != i.Visible() {
				t.Fatalf("item %s mentioned=%v visible=%v in %q", i.ID(), mentioned, i.Visible(), desc)
			}
		}
	})
}
