package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/navigation"
	"github.com/muesli/reflow/wordwrap"
)

const PlaceHolderText = "Type a command, or an action number..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	starter      *sessionStarter
	session      *session
	descViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error

	journal      []string
	actions      []action.Action
	lastLocation string
	pressed      navigation.Slot

	// Scenario selection state
	showScenarioModal bool
	scenarios         []string
	selectedScenario  int

	// Follow-up chooser state
	chooser        []action.Action
	chooserTitle   string
	selectedChoice int

	// Quit confirmation state
	showQuitModal bool
}

var (
	descPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(starter *sessionStarter, scenarios []string, preferred string) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	descVp := viewport.New(50, 20)
	descVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	selected := slices.Index(scenarios, preferred)
	if selected < 0 {
		selected = 0
	}

	return ConsoleUI{
		starter:           starter,
		textarea:          ta,
		descViewport:      descVp,
		metaViewport:      metaVp,
		showScenarioModal: true,
		scenarios:         scenarios,
		selectedScenario:  selected,
		pressed:           navigation.NoSlot,
	}
}

// layout returns the widths of the description and side panels.
func (m ConsoleUI) layout() (descWidth, sideWidth int) {
	descWidth = int(float64(m.width)*0.70) - 4
	sideWidth = m.width - descWidth
	return descWidth, sideWidth
}

// compassOrigin is the screen cell of the compass pad's top-left border.
func (m ConsoleUI) compassOrigin() (int, int) {
	descWidth, _ := m.layout()
	return descWidth, metaPanelStyle.GetPaddingTop()
}

func (m *ConsoleUI) resize() {
	descWidth, sideWidth := m.layout()
	m.descViewport.Width = descWidth - 4
	m.descViewport.Height = max(m.height-9, 3)
	m.metaViewport.Width = sideWidth - 2
	m.metaViewport.Height = max(m.height-compassHeight-5, 3)
	m.textarea.SetWidth(descWidth - 6)
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	if m.showScenarioModal {
		return m.updateScenarioModal(msg)
	}

	if m.chooser != nil {
		return m.updateChooser(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.handleCompassMouse(msg) {
			return m, nil
		}
		m.descViewport, vpCmd = m.descViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.writeContent()

	case tea.KeyMsg:
		empty := strings.TrimSpace(m.textarea.Value()) == ""

		switch msg.String() {
		case "ctrl+c", "esc":
			m.showQuitModal = true
			return m, nil

		case "ctrl+y":
			m.copyDescription()
			return m, nil

		case "up", "down", "left", "right":
			if empty {
				m.moveToward(msg.String())
				return m, nil
			}

		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if empty {
				n, _ := strconv.Atoi(msg.String())
				m.chooseAction(n - 1)
				return m, nil
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input != "" {
				m.handleInput(input)
			}
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.descViewport, vpCmd = m.descViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// handleCompassMouse routes left-button presses and releases inside the
// compass to the pad. It reports whether the event was consumed.
func (m *ConsoleUI) handleCompassMouse(msg tea.MouseMsg) bool {
	// Some terminals report releases without a button.
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return false
	}

	ox, oy := m.compassOrigin()
	tx, ty, ok := compassTouch(ox, oy, msg.X, msg.Y)
	if !ok {
		m.pressed = navigation.NoSlot
		return false
	}

	touch := navigation.Touch{X: tx, Y: ty}
	switch msg.Action {
	case tea.MouseActionPress:
		touch.Phase = navigation.TouchDown
		m.pressed = navigation.QuadrantAt(compassWidth, compassHeight, tx, ty)
	case tea.MouseActionRelease:
		touch.Phase = navigation.TouchUp
		m.pressed = navigation.NoSlot
	default:
		return true
	}

	if m.session.pad.Dispatch(touch, compassWidth, compassHeight) {
		m.afterChange()
	} else {
		m.writeContent()
	}
	return true
}

func (m *ConsoleUI) moveToward(key string) {
	slot := map[string]navigation.Slot{
		"up":    navigation.Top,
		"down":  navigation.Bottom,
		"right": navigation.Right,
		"left":  navigation.Left,
	}[key]

	if m.session.pad.Select(slot) {
		m.afterChange()
		return
	}
	m.journal = append(m.journal, promptStyle.Render("There is no exit that way."))
	m.writeContent()
}

func (m *ConsoleUI) handleInput(input string) {
	m.journal = append(m.journal, userStyle.Render("> "+input))

	if n, err := strconv.Atoi(input); err == nil {
		m.chooseAction(n - 1)
		return
	}

	if strings.EqualFold(input, "help") || input == "?" {
		m.journal = append(m.journal, helpText)
		m.writeContent()
		return
	}

	res := m.session.model.TryHandleCommand(input)
	if !res.Handled {
		m.journal = append(m.journal, promptStyle.Render("I don't know how to do that. Type help for commands."))
		m.writeContent()
		return
	}

	// Moves print the new location themselves.
	if m.session.model.CurrentLocation().ID() == m.lastLocation {
		m.journal = append(m.journal, res.Message)
	}
	m.afterChange()
}

func (m *ConsoleUI) chooseAction(index int) {
	if index < 0 || index >= len(m.actions) {
		m.journal = append(m.journal, promptStyle.Render("There is no such action."))
		m.writeContent()
		return
	}
	m.perform(m.actions[index])
}

// perform triggers an action and then either opens its follow-up chooser
// or shows its text.
func (m *ConsoleUI) perform(a action.Action) {
	m.journal = append(m.journal, actionStyle.Render("> "+a.Label()))
	a.Trigger()

	if a.UserMustChooseFollowUpAction() {
		followUps := a.FollowUpActions()
		if len(followUps) == 0 {
			m.journal = append(m.journal, promptStyle.Render("There is nothing to choose."))
		} else {
			m.chooser = followUps
			m.chooserTitle = a.Label()
			m.selectedChoice = 0
		}
	}

	if a.UserTextAvailable() {
		m.journal = append(m.journal, a.UserText())
	}

	m.afterChange()
}

// afterChange re-reads the model after anything that may have changed it.
func (m *ConsoleUI) afterChange() {
	m.session.refresh()

	actions, err := m.session.model.CurrentLocationActions()
	if err != nil {
		m.starter.log().Error("Failed to build actions", "error", err)
		m.journal = append(m.journal, errorStyle.Render("Error: "+err.Error()))
	}
	m.actions = actions

	if l := m.session.model.CurrentLocation(); l != nil && l.ID() != m.lastLocation {
		m.lastLocation = l.ID()
		m.journal = append(m.journal,
			locationStyle.Render(displayName(l.ID())),
			m.session.model.CurrentLocationDescription())
	}

	m.writeContent()
}

func (m *ConsoleUI) copyDescription() {
	if err := clipboard.WriteAll(m.session.model.CurrentLocationDescription()); err != nil {
		m.journal = append(m.journal, errorStyle.Render("Could not copy: "+err.Error()))
	} else {
		m.journal = append(m.journal, promptStyle.Render("Description copied to the clipboard."))
	}
	m.writeContent()
}

// writeContent rebuilds both panels for the current width.
func (m *ConsoleUI) writeContent() {
	if m.session == nil {
		return
	}

	width := max(m.descViewport.Width-2, 10)
	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(m.session.scenario.Name)) + "\n\n")
	if m.session.scenario.Story != "" {
		content.WriteString(wordwrap.String(m.session.scenario.Story, width) + "\n\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")
	for _, entry := range m.journal {
		content.WriteString(wordwrap.String(entry, width) + "\n\n")
	}

	m.descViewport.SetContent(content.String())
	m.descViewport.GotoBottom()
	m.metaViewport.SetContent(writeMetadata(m.session))
}

func writeMetadata(s *session) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME") + "\n\n")

	content.WriteString("Game ID:\n")
	content.WriteString(s.model.ID().String() + "\n\n")

	if l := s.model.CurrentLocation(); l != nil {
		content.WriteString("Location:\n")
		content.WriteString(fmt.Sprintf("%s (%d, %d)\n\n", displayName(l.ID()), l.X(), l.Y()))
	}

	explored := s.monitor.ExploredAreas()
	content.WriteString(fmt.Sprintf("Explored: %d of %d areas\n", len(explored), len(s.scenario.Areas())))
	for _, area := range explored {
		content.WriteString("• " + displayName(area) + "\n")
	}
	content.WriteString("\n")

	items := s.model.InventoryItems()
	if len(items) == 0 {
		content.WriteString("Inventory:\nEmpty\n")
	} else {
		content.WriteString("Inventory:\n")
		for _, i := range items {
			content.WriteString("• " + i.Name() + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• 1-9: Action\n")
	content.WriteString("• Arrows/click: Move\n")
	content.WriteString("• Ctrl+Y: Copy\n")
	content.WriteString("• Esc: Quit\n")

	return content.String()
}

const helpText = `Commands:
• look (l) - Describe this location
• inventory (i) - List what you carry
• go <exit or direction> - Move
• <number> - Perform an action
• Arrow keys or clicking the compass also move you.`

func (m ConsoleUI) renderActions() string {
	if len(m.actions) == 0 {
		return promptStyle.Render("Nothing to do here.")
	}
	parts := make([]string, len(m.actions))
	for n, a := range m.actions {
		parts[n] = actionStyle.Render(fmt.Sprintf("%d.", n+1)) + " " + a.Label()
	}
	return strings.Join(parts, "   ")
}

func (m ConsoleUI) updateScenarioModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedScenario > 0 {
				m.selectedScenario--
			}
		case tea.KeyDown:
			if m.selectedScenario < len(m.scenarios)-1 {
				m.selectedScenario++
			}
		case tea.KeyEnter:
			if len(m.scenarios) == 0 {
				return m, nil
			}
			s, err := m.starter.start(m.scenarios[m.selectedScenario])
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.session = s
			m.showScenarioModal = false
			m.resize()
			m.ready = m.width > 0 && m.height > 0
			m.afterChange()
			m.textarea.Focus()
			return m, textarea.Blink
		}
	}

	return m, nil
}

func (m ConsoleUI) updateChooser(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.writeContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.chooser = nil
		case tea.KeyUp:
			if m.selectedChoice > 0 {
				m.selectedChoice--
			}
		case tea.KeyDown:
			if m.selectedChoice < len(m.chooser)-1 {
				m.selectedChoice++
			}
		case tea.KeyEnter:
			chosen := m.chooser[m.selectedChoice]
			m.chooser = nil
			m.perform(chosen)
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.showScenarioModal {
					return m, nil
				}
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

// renderList draws a modal list with the selected entry highlighted.
func renderList(title string, entries []string, selected int, hint string) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(title))
	content.WriteString("\n\n")

	for i, entry := range entries {
		if i == selected {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", entry)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", entry)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render(hint))
	return content.String()
}

func (m ConsoleUI) renderScenarioModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	names := make([]string, len(m.scenarios))
	for i, path := range m.scenarios {
		names[i] = displayName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	content := renderList("Select a Scenario", names, m.selectedScenario,
		"Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit")
	if m.err != nil {
		content += "\n\n" + errorStyle.Render(wordwrap.String(fmt.Sprintf("Failed to start: %v", m.err), 54))
	}

	modal := modalStyle.Width(60).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderChooser() string {
	labels := make([]string, len(m.chooser))
	for i, a := range m.chooser {
		labels[i] = a.Label()
	}

	content := renderList(m.chooserTitle, labels, m.selectedChoice,
		"Use ↑/↓ to navigate, Enter to choose, Esc to cancel")

	modal := modalStyle.Width(50).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.showScenarioModal {
		return m.renderScenarioModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	if m.chooser != nil {
		return m.renderChooser()
	}

	descWidth, sideWidth := m.layout()

	descPanel := descPanelStyle.Width(descWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.descViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", descWidth-4)),
			m.renderActions(),
			m.textarea.View(),
		),
	)

	sidePanel := metaPanelStyle.Width(sideWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			renderCompass(m.session.pad.Labels(), m.pressed),
			"",
			m.metaViewport.View(),
		),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, descPanel, sidePanel)
}
