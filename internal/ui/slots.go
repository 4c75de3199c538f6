package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/codeverifier/internal/verifier"
)

// DefaultMaskRune replaces typed characters when SlotStyle.Secure is set
const DefaultMaskRune = '•'

// Verdict is the visual state of a fully rendered slot row
type Verdict int

const (
	// VerdictPending means the code is not complete yet
	VerdictPending Verdict = iota
	// VerdictCorrect means the input equals the code
	VerdictCorrect
	// VerdictIncorrect means every slot is filled but the input is wrong
	VerdictIncorrect
)

// SlotStyle describes how slots are drawn.
type SlotStyle struct {
	Layout verifier.Layout

	Secure   bool // Draw MaskRune instead of the typed character
	MaskRune rune

	IdleColor    lipgloss.Color // Border of slots that are not active
	ActiveColor  lipgloss.Color // Border and carrier of the slot receiving input
	FilledColor  lipgloss.Color // Typed characters
	CorrectColor lipgloss.Color // Borders once the code is correct
	WrongColor   lipgloss.Color // Borders once a full code is wrong

	CarrierChar string // Drawn LineHeight times under each slot
}

// DefaultSlotStyle returns the stock slot appearance.
func DefaultSlotStyle() SlotStyle {
	return SlotStyle{
		Layout:       verifier.DefaultLayout(),
		MaskRune:     DefaultMaskRune,
		IdleColor:    MutedColor,
		ActiveColor:  PrimaryColor,
		FilledColor:  TextColor,
		CorrectColor: SuccessColor,
		WrongColor:   ErrorColor,
		CarrierChar:  "─",
	}
}

// SlotState is everything RenderSlots needs besides the style.
type SlotState struct {
	Fields  []verifier.Field
	Active  int // Index receiving the next character, -1 for none
	Focused bool
	Verdict Verdict
}

// VerdictFor derives the verdict from the fields and the correctness flag.
func VerdictFor(fields []verifier.Field, correct bool) Verdict {
	if correct {
		return VerdictCorrect
	}
	if len(fields) > 0 && verifier.NextEmpty(fields) == -1 {
		return VerdictIncorrect
	}
	return VerdictPending
}

// RenderSlots draws one box per field, separated by the layout spacing, with
// the carrier line beneath. The result is exactly Layout.Size(len(fields)).
func RenderSlots(state SlotState, style SlotStyle) string {
	if len(state.Fields) == 0 {
		return ""
	}

	columns := make([]string, 0, len(state.Fields)*2)
	spacer := strings.Repeat(" ", style.Layout.SlotSpacing)

	for i, f := range state.Fields {
		if i > 0 && style.Layout.SlotSpacing > 0 {
			columns = append(columns, spacer)
		}
		active := state.Focused && state.Verdict == VerdictPending && f.Index == state.Active
		columns = append(columns, renderSlot(f, active, state.Verdict, style))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderSlot draws a single slot column: box, carrier spacing, carrier line.
func renderSlot(f verifier.Field, active bool, verdict Verdict, style SlotStyle) string {
	l := style.Layout
	inner := l.SlotWidth - 2

	border := style.IdleColor
	switch {
	case verdict == VerdictCorrect:
		border = style.CorrectColor
	case verdict == VerdictIncorrect:
		border = style.WrongColor
	case active:
		border = style.ActiveColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(style.FilledColor).
		Bold(true).
		Width(inner).
		Height(l.LabelHeight - 2).
		AlignVertical(lipgloss.Center).
		Render(centerCell(slotText(f, style), inner))

	rows := []string{box}
	for i := 0; i < l.CarrierSpacing; i++ {
		rows = append(rows, "")
	}
	if l.LineHeight > 0 {
		carrierColor := style.IdleColor
		if active {
			carrierColor = style.ActiveColor
		}
		char := style.CarrierChar
		if char == "" || runewidth.StringWidth(char) != 1 {
			char = "─"
		}
		line := lipgloss.NewStyle().
			Foreground(carrierColor).
			Render(strings.Repeat(char, l.SlotWidth))
		rows = append(rows, line)
		for i := 1; i < l.LineHeight; i++ {
			rows = append(rows, "")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// slotText returns what a slot shows for f.
func slotText(f verifier.Field, style SlotStyle) string {
	if f.Empty() {
		return ""
	}
	if style.Secure {
		mask := style.MaskRune
		if mask == 0 {
			mask = DefaultMaskRune
		}
		return string(mask)
	}
	// Control characters are compared literally but have no glyph
	if runewidth.StringWidth(f.Character) == 0 {
		return "?"
	}
	return f.Character
}

// centerCell pads s with spaces to exactly width cells, truncating if needed.
func centerCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
