package main

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/text-adventure/pkg/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lighthouse = filepath.Join("..", "..", "data", "scenarios", "lighthouse_cove.yaml")

func startedUI(t *testing.T) ConsoleUI {
	t.Helper()

	var model tea.Model = NewConsoleUI(&sessionStarter{}, []string{lighthouse}, lighthouse)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	ui := model.(ConsoleUI)
	require.NoError(t, ui.err)
	require.NotNil(t, ui.session)
	return ui
}

func update(t *testing.T, ui ConsoleUI, msg tea.Msg) ConsoleUI {
	t.Helper()
	model, _ := ui.Update(msg)
	return model.(ConsoleUI)
}

func TestListScenarios(t *testing.T) {
	paths, err := listScenarios(filepath.Dir(lighthouse))
	require.NoError(t, err)
	assert.Contains(t, paths, lighthouse)

	_, err = listScenarios(t.TempDir())
	assert.Error(t, err)
}

func TestSessionStarter_Start(t *testing.T) {
	s, err := (&sessionStarter{}).start(lighthouse)
	require.NoError(t, err)

	assert.Equal(t, "beach", s.model.CurrentLocation().ID())
	assert.Equal(t, []string{"shore"}, s.monitor.ExploredAreas())

	labels := s.pad.Labels()
	assert.Equal(t, "Cliff path", labels[navigation.Top])
	assert.Equal(t, "Tide pools", labels[navigation.Bottom])
	assert.Equal(t, "Boathouse", labels[navigation.Right])
	assert.Equal(t, "", labels[navigation.Left])

	_, err = (&sessionStarter{}).start("missing.yaml")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Cliff Top", displayName("cliff_top"))
	assert.Equal(t, "Unknown", displayName(""))
}

func TestCompassTouch(t *testing.T) {
	tx, ty, ok := compassTouch(10, 2, 11, 3)
	require.True(t, ok)
	assert.Equal(t, 0, tx)
	assert.Equal(t, 0, ty)

	_, _, ok = compassTouch(10, 2, 10, 3)
	assert.False(t, ok, "border is outside the pad")

	_, _, ok = compassTouch(10, 2, 11+compassWidth, 3)
	assert.False(t, ok)
}

func TestRenderCompass(t *testing.T) {
	var labels [navigation.NoSlot]string
	labels[navigation.Top] = "North door"
	labels[navigation.Left] = "A very long western corridor"

	out := renderCompass(labels, navigation.NoSlot)
	assert.Contains(t, out, "North door")
	assert.Contains(t, out, "…")
	assert.Len(t, strings.Split(out, "\n"), compassHeight+2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long…", truncate("longer text", 5))
}

func TestConsoleUI_StartsScenario(t *testing.T) {
	ui := startedUI(t)

	assert.False(t, ui.showScenarioModal)
	require.Len(t, ui.actions, 3)
	assert.Equal(t, "Take an item", ui.actions[0].Label())
	assert.Equal(t, "Talk to gull", ui.actions[2].Label())
	assert.Contains(t, ui.View(), "Cliff path")
}

func TestConsoleUI_CompassReleaseMoves(t *testing.T) {
	ui := startedUI(t)
	ox, oy := ui.compassOrigin()
	x, y := ox+1+compassWidth/2, oy+1

	ui = update(t, ui, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "beach", ui.session.model.CurrentLocation().ID(), "press alone does not move")
	assert.Equal(t, navigation.Top, ui.pressed)

	ui = update(t, ui, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, "cliff_top", ui.session.model.CurrentLocation().ID())
	assert.Equal(t, []string{"headland", "shore"}, ui.session.monitor.ExploredAreas())
	assert.Equal(t, navigation.NoSlot, ui.pressed)
}

func TestConsoleUI_ArrowKeysMove(t *testing.T) {
	ui := startedUI(t)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "tide_pools", ui.session.model.CurrentLocation().ID())

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "tide_pools", ui.session.model.CurrentLocation().ID())
	assert.Contains(t, ui.journal[len(ui.journal)-1], "no exit that way")
}

func TestConsoleUI_TakeThroughChooser(t *testing.T) {
	ui := startedUI(t)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	require.NotNil(t, ui.chooser)
	assert.Equal(t, "Take an item", ui.chooserTitle)
	require.Len(t, ui.chooser, 1)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, ui.chooser)
	require.Len(t, ui.session.model.InventoryItems(), 2)
	assert.Equal(t, "Driftwood", ui.session.model.InventoryItems()[1].Name())
	require.Len(t, ui.actions, 2, "nothing left to take")
}

func TestConsoleUI_TalkShowsResponse(t *testing.T) {
	ui := startedUI(t)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.Len(t, ui.chooser, 2)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, ui.journal[len(ui.journal)-1], "The gull screams")
}

func TestConsoleUI_TypedCommands(t *testing.T) {
	ui := startedUI(t)

	ui.textarea.SetValue("go east")
	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "boathouse", ui.session.model.CurrentLocation().ID())

	ui.textarea.SetValue("i")
	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, ui.journal[len(ui.journal)-1], "Box of matches")

	ui.textarea.SetValue("dance")
	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, ui.journal[len(ui.journal)-1], "don't know how")
}

func TestConsoleUI_QuitModal(t *testing.T) {
	ui := startedUI(t)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, ui.showQuitModal)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.False(t, ui.showQuitModal)

	ui = update(t, ui, tea.KeyMsg{Type: tea.KeyCtrlC})
	_, cmd := ui.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
