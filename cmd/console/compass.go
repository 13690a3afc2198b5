package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/text-adventure/pkg/navigation"
)

// Inner size of the compass pad, in cells. The border adds one cell on
// every side.
const (
	compassWidth  = 28
	compassHeight = 7
)

var (
	compassStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	compassLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")) // green

	compassPressedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

// renderCompass draws the slot labels around a centre mark. The pressed
// slot, if any, is highlighted.
func renderCompass(labels [navigation.NoSlot]string, pressed navigation.Slot) string {
	side := compassWidth/2 - 2

	style := func(s navigation.Slot, text string) string {
		if text == "" {
			return ""
		}
		if s == pressed {
			return compassPressedStyle.Render(text)
		}
		return compassLabelStyle.Render(text)
	}

	rows := make([]string, compassHeight)
	for i := range rows {
		rows[i] = strings.Repeat(" ", compassWidth)
	}

	top := truncate(labels[navigation.Top], compassWidth)
	rows[0] = centre(style(navigation.Top, top), len([]rune(top)), compassWidth)

	bottom := truncate(labels[navigation.Bottom], compassWidth)
	rows[compassHeight-1] = centre(style(navigation.Bottom, bottom), len([]rune(bottom)), compassWidth)

	left := truncate(labels[navigation.Left], side)
	right := truncate(labels[navigation.Right], side)
	middle := compassWidth - len([]rune(left)) - len([]rune(right))
	rows[compassHeight/2] = style(navigation.Left, left) +
		centre("+", 1, middle) +
		style(navigation.Right, right)

	return compassStyle.Render(strings.Join(rows, "\n"))
}

// centre pads rendered text of the given visible width to width cells.
func centre(rendered string, visible, width int) string {
	if visible >= width {
		return rendered
	}
	left := (width - visible) / 2
	return strings.Repeat(" ", left) + rendered + strings.Repeat(" ", width-visible-left)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// compassTouch converts a screen cell to a point inside the pad whose
// border starts at (originX, originY). ok is false outside the pad.
func compassTouch(originX, originY, x, y int) (tx, ty int, ok bool) {
	tx = x - originX - 1
	ty = y - originY - 1
	if tx < 0 || ty < 0 || tx >= compassWidth || ty >= compassHeight {
		return 0, 0, false
	}
	return tx, ty, true
}
