package state

import (
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/world"
)

type CommandType string

const (
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdGo        CommandType = "go"
	CmdNone      CommandType = "" // not a command
)

// parseCommand returns the command and its argument, or CmdNone.
func parseCommand(input string) (CommandType, string) {
	known := map[string]CommandType{
		"look":      CmdLook,
		"location":  CmdLook,
		"l":         CmdLook,
		"inventory": CmdInventory,
		"i":         CmdInventory,
		"go":        CmdGo,
		"move":      CmdGo,
		"m":         CmdGo,
	}
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return CmdNone, ""
	}
	verb, arg, _ := strings.Cut(trimmed, " ")
	cmd, ok := known[verb]
	if !ok {
		return CmdNone, ""
	}
	return cmd, strings.TrimSpace(arg)
}

// CommandResult is the outcome of a typed command.
type CommandResult struct {
	Handled bool   // the input was a command and has been carried out
	Message string // text to show the player
}

// TryHandleCommand runs a typed shortcut command against the model.
// Unrecognised input is returned unhandled.
func (m *GameModel) TryHandleCommand(input string) *CommandResult {
	cmd, arg := parseCommand(input)

	switch cmd {
	case CmdLook:
		return &CommandResult{Handled: true, Message: m.DescribeLocation()}

	case CmdInventory:
		return &CommandResult{Handled: true, Message: m.DescribeInventory()}

	case CmdGo:
		e := m.findExit(arg)
		if e == nil {
			return &CommandResult{Handled: true, Message: "You can't go that way."}
		}
		m.MoveThroughExit(e)
		return &CommandResult{Handled: true, Message: m.DescribeLocation()}

	default:
		return &CommandResult{Handled: false, Message: input}
	}
}

// findExit matches a visible exit by label, then by direction hint.
func (m *GameModel) findExit(arg string) *world.Exit {
	if arg == "" {
		return nil
	}
	exits := m.CurrentLocationExits()
	for _, e := range exits {
		if strings.EqualFold(e.Label(), arg) {
			return e
		}
	}
	hint, err := world.ParseDirectionHint(arg)
	if err != nil || hint == world.None {
		return nil
	}
	for _, e := range exits {
		if e.DirectionHint() == hint {
			return e
		}
	}
	return nil
}

func (m *GameModel) DescribeLocation() string {
	if m.current == nil {
		return "You are in an unknown location."
	}
	return m.current.Description()
}

func (m *GameModel) DescribeInventory() string {
	items := m.InventoryItems()
	if len(items) == 0 {
		return "Your inventory is empty."
	}
	names := make([]string, len(items))
	for n, i := range items {
		names[n] = i.Name()
	}
	return "You have:\n- " + strings.Join(names, "\n- ")
}
