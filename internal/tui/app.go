package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/ui/codefield"
	"github.com/muurk/codeverifier/internal/verifier"
)

// Options configures the host screen.
type Options struct {
	Code          string
	Style         ui.SlotStyle
	ExitOnSuccess bool

	OnCodeFilled func(correct bool)
	OnEdit       func(text string)
}

// Result is the outcome of an interactive session.
type Result struct {
	Correct bool
	Input   string
	Edits   int
}

// appKeyMap combines the field's bindings with the host's quit binding
type appKeyMap struct {
	field codefield.KeyMap
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return append(k.field.ShortHelp(), k.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// AppModel hosts one code field full screen.
type AppModel struct {
	Field codefield.Model

	ExitOnSuccess bool
	Edits         int
	Quitting      bool

	Width  int
	Height int

	Help help.Model
	Keys appKeyMap
}

// NewAppModel creates the host screen with a focused code field.
func NewAppModel(opts Options) (AppModel, error) {
	field, err := codefield.New(codefield.Config{
		Code:         opts.Code,
		Style:        opts.Style,
		Focused:      true,
		OnCodeFilled: opts.OnCodeFilled,
		OnEdit:       opts.OnEdit,
	})
	if err != nil {
		return AppModel{}, fmt.Errorf("failed to create code field: %w", err)
	}

	return AppModel{
		Field:         field,
		ExitOnSuccess: opts.ExitOnSuccess,
		Help:          help.New(),
		Keys: appKeyMap{
			field: field.Keys(),
			Quit: key.NewBinding(
				key.WithKeys("esc", "ctrl+c"),
				key.WithHelp("esc", "quit"),
			),
		},
	}, nil
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Field.Init()
}

// Update handles window sizing and quitting, and routes everything else to the field
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if x, y, ok := m.locateField(); ok {
			m.Field.SetOrigin(x, y)
		}

	case codefield.EditedMsg:
		m.Edits++
		return m, nil

	case codefield.CodeFilledMsg:
		if msg.Correct && m.ExitOnSuccess {
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Field, cmd = m.Field.Update(msg)
	return m, cmd
}

// locateField finds the screen cell where the field's top-left corner is
// drawn by searching the rendered screen for the field's first row.
func (m AppModel) locateField() (x, y int, ok bool) {
	top, _, _ := strings.Cut(ansi.Strip(m.Field.View()), "\n")
	lead := len(top) - len(strings.TrimLeft(top, " "))
	top = strings.TrimSpace(top)
	if top == "" {
		return 0, 0, false
	}

	for row, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		if i := strings.Index(line, top); i >= 0 {
			return ansi.StringWidth(line[:i]) - lead, row, true
		}
	}
	return 0, 0, false
}

// Result reports the state of the field
func (m AppModel) Result() Result {
	return Result{
		Correct: m.Field.Correct(),
		Input:   m.Field.Text(),
		Edits:   m.Edits,
	}
}

// View renders the current screen
func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

// buildContent builds the prompt, slots and status line
func (m AppModel) buildContent() string {
	fields := m.Field.Fields()

	var b strings.Builder
	b.WriteString(PromptStyle.Render(fmt.Sprintf("Enter the %d-character code", len(fields))))
	b.WriteString("\n")
	b.WriteString(m.Field.View())
	b.WriteString("\n\n")
	b.WriteString(m.status(fields))

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

// status describes the current verdict in one line
func (m AppModel) status(fields []verifier.Field) string {
	switch ui.VerdictFor(fields, m.Field.Correct()) {
	case ui.VerdictCorrect:
		return StatusCorrectStyle.Render(ui.SuccessMarker + " Code correct")
	case ui.VerdictIncorrect:
		return StatusIncorrectStyle.Render(ui.FailureMarker + " Code incorrect")
	}
	if !m.Field.Focused() {
		return StatusBlurredStyle.Render("Input paused - press tab or click to resume")
	}
	return StatusPendingStyle.Render(fmt.Sprintf("%d/%d entered", verifier.Filled(fields), len(fields)))
}
