package codefield

import (
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/codeverifier/internal/logging"
	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/verifier"
)

// CodeFilledMsg is emitted when the correctness of the input changes.
type CodeFilledMsg struct {
	Correct bool
}

// EditedMsg is emitted after every edit with the full raw text.
type EditedMsg struct {
	Text string
}

// Config configures a code field. Code is required.
type Config struct {
	Code  string
	Style ui.SlotStyle // Zero value uses ui.DefaultSlotStyle()
	Keys  *KeyMap      // Nil uses DefaultKeyMap()

	// Focused starts the field accepting keystrokes
	Focused bool

	OnCodeFilled func(correct bool)
	OnEdit       func(text string)
}

// Model is a Bubble Tea component showing one slot per code character.
//
// Typed and pasted runes are stored literally in raw. The hidden textinput
// holds a mirror of raw with the same rune count and serves the editing keys
// (backspace, word deletion, cursor movement); its edits are copied back onto
// raw. The slots are derived from raw after every change.
type Model struct {
	session *verifier.Session
	input   textinput.Model
	raw     []rune
	style   ui.SlotStyle
	keys    KeyMap

	// Top-left cell of the field on screen, used for mouse hits
	originX int
	originY int

	width  int
	height int
}

// placeholderRune stands in for control characters in the mirror, which
// textinput would otherwise drop.
const placeholderRune = '\uE000'

// mirror maps raw text to runes textinput stores unchanged, one for one.
func mirror(raw []rune) string {
	out := make([]rune, len(raw))
	for i, r := range raw {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			out[i] = ' '
		case unicode.IsControl(r) || r == unicode.ReplacementChar:
			out[i] = placeholderRune
		default:
			out[i] = r
		}
	}
	return string(out)
}

// New creates a code field for cfg.Code.
// An empty code returns verifier.ErrEmptyCode; an unusable layout returns a
// verifier config error.
func New(cfg Config) (Model, error) {
	code, err := verifier.NewCode(cfg.Code)
	if err != nil {
		return Model{}, err
	}

	style := cfg.Style
	if style.Layout == (verifier.Layout{}) {
		style = ui.DefaultSlotStyle()
	}
	if err := style.Layout.Validate(); err != nil {
		return Model{}, err
	}

	session, err := verifier.New(verifier.Config{
		Code:         code,
		OnCodeFilled: cfg.OnCodeFilled,
		OnEdit:       cfg.OnEdit,
	})
	if err != nil {
		return Model{}, err
	}

	keys := DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0 // Over-long input must reach the slot projection
	ti.EchoMode = textinput.EchoNone
	ti.Cursor.SetMode(cursor.CursorHide)

	m := Model{
		session: session,
		input:   ti,
		style:   style,
		keys:    keys,
	}
	m.width, m.height = session.Size(style.Layout)

	if cfg.Focused {
		m.focus()
	}

	logging.LogSession(code.Len(), style.Secure)
	return m, nil
}

// OnCodeFilled sets the correctness callback. Call before the first update.
func (m Model) OnCodeFilled(fn func(correct bool)) Model {
	m.session.OnCodeFilled(fn)
	return m
}

// OnEdit sets the edit callback. Call before the first update.
func (m Model) OnEdit(fn func(text string)) Model {
	m.session.OnEdit(fn)
	return m
}

// WithStyle is kept for source compatibility and does nothing.
//
// Deprecated: set Config.Style when calling New.
func (m Model) WithStyle(ui.SlotStyle) Model {
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles focus toggles, clearing, and input for the hidden field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ToggleFocus):
			m.ToggleFocus()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if !m.session.Focused() {
				return m, nil
			}
			return m, m.Reset()
		}
		if !m.session.Focused() {
			return m, nil
		}

		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
			typed := msg.Runes
			if msg.Type == tea.KeySpace && len(typed) == 0 {
				typed = []rune{' '}
			}
			if len(typed) == 0 {
				return m, nil
			}
			m.insert(typed)
			return m, m.sync(string(m.raw))
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.contains(msg.X, msg.Y) {
			m.ToggleFocus()
		}
		return m, nil
	}

	before := []rune(m.input.Value())
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == string(before) {
		return m, cmd
	}
	m.reconcile(before)
	return m, tea.Batch(cmd, m.sync(string(m.raw)))
}

// insert puts runes into raw at the cursor, unmodified.
func (m *Model) insert(runes []rune) {
	pos := min(m.input.Position(), len(m.raw))

	raw := make([]rune, 0, len(m.raw)+len(runes))
	raw = append(raw, m.raw[:pos]...)
	raw = append(raw, runes...)
	raw = append(raw, m.raw[pos:]...)
	m.raw = raw

	m.input.SetValue(mirror(raw))
	m.input.SetCursor(pos + len(runes))
}

// reconcile applies the edit the hidden input made to its mirror onto raw.
// before is the mirror prior to the edit and lines up rune for rune with raw.
func (m *Model) reconcile(before []rune) {
	after := []rune(m.input.Value())

	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}

	raw := make([]rune, 0, len(after))
	raw = append(raw, m.raw[:prefix]...)
	raw = append(raw, after[prefix:len(after)-suffix]...)
	raw = append(raw, m.raw[len(m.raw)-suffix:]...)
	m.raw = raw
}

// contains reports whether the screen cell x, y lies on the field
func (m Model) contains(x, y int) bool {
	return x >= m.originX && x < m.originX+m.width &&
		y >= m.originY && y < m.originY+m.height
}

// SetOrigin tells the field where its top-left cell is drawn so mouse
// clicks outside it are ignored. The default origin is 0, 0.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// sync feeds text into the session and turns the result into messages for
// the parent model.
func (m Model) sync(text string) tea.Cmd {
	change := m.session.TextChanged(text)

	logging.LogEdit(len(text), verifier.Filled(change.Fields), len(change.Fields))

	cmds := []tea.Cmd{func() tea.Msg { return EditedMsg{Text: text} }}
	if change.CorrectChanged {
		logging.LogCorrectness(change.Correct)
		correct := change.Correct
		cmds = append(cmds, func() tea.Msg { return CodeFilledMsg{Correct: correct} })
	}
	return tea.Batch(cmds...)
}

// SetText replaces the input programmatically, as if the user had typed it.
func (m *Model) SetText(text string) tea.Cmd {
	m.raw = []rune(text)
	m.input.SetValue(mirror(m.raw))
	m.input.CursorEnd()
	return m.sync(text)
}

// Reset clears the input. Notifications follow the usual edit rules.
func (m *Model) Reset() tea.Cmd {
	m.raw = nil
	m.input.Reset()
	return m.sync("")
}

// ToggleFocus flips whether keystrokes reach the hidden input.
// The typed text and the slots are unchanged.
func (m *Model) ToggleFocus() {
	if m.session.Focused() {
		m.blur()
	} else {
		m.focus()
	}
	logging.LogFocus(m.session.Focused())
}

func (m *Model) focus() {
	m.session.SetFocused(true)
	m.input.Focus()
}

func (m *Model) blur() {
	m.session.SetFocused(false)
	m.input.Blur()
}

// Focused reports whether the field accepts keystrokes
func (m Model) Focused() bool {
	return m.session.Focused()
}

// Text returns the raw input, which may be longer than the code
func (m Model) Text() string {
	return m.session.Text()
}

// Fields returns the current slots
func (m Model) Fields() []verifier.Field {
	return m.session.Fields()
}

// Correct reports whether the input equals the code
func (m Model) Correct() bool {
	return m.session.Correct()
}

// Size returns the fixed rendered size computed at construction
func (m Model) Size() (width, height int) {
	return m.width, m.height
}

// Keys returns the bindings for use with bubbles/help
func (m Model) Keys() KeyMap {
	return m.keys
}

// View renders the slots. The hidden input is never drawn.
func (m Model) View() string {
	fields := m.session.Fields()
	return ui.RenderSlots(ui.SlotState{
		Fields:  fields,
		Active:  verifier.NextEmpty(fields),
		Focused: m.session.Focused(),
		Verdict: ui.VerdictFor(fields, m.session.Correct()),
	}, m.style)
}
