package codefield

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/codeverifier/internal/ui"
	"github.com/muurk/codeverifier/internal/verifier"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	clearKey  = tea.KeyMsg{Type: tea.KeyCtrlU}
)

// collect runs cmd and returns every message it produces, flattening batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func filledMsgs(msgs []tea.Msg) []bool {
	var out []bool
	for _, msg := range msgs {
		if f, ok := msg.(CodeFilledMsg); ok {
			out = append(out, f.Correct)
		}
	}
	return out
}

func editedMsgs(msgs []tea.Msg) []string {
	var out []string
	for _, msg := range msgs {
		if e, ok := msg.(EditedMsg); ok {
			out = append(out, e.Text)
		}
	}
	return out
}

func characters(fields []verifier.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Character
	}
	return out
}

func newField(t *testing.T, code string) Model {
	t.Helper()
	m, err := New(Config{Code: code, Focused: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Code: ""}); !verifier.IsPreconditionError(err) {
		t.Errorf("empty code error = %v, want precondition error", err)
	}

	style := ui.DefaultSlotStyle()
	style.Layout.SlotWidth = 1
	if _, err := New(Config{Code: "12", Style: style}); !verifier.IsConfigError(err) {
		t.Errorf("narrow slot error = %v, want config error", err)
	}
}

func TestTypingProjectsOntoSlots(t *testing.T) {
	m := newField(t, "1234")

	var msgs []tea.Msg
	var cmd tea.Cmd

	m, cmd = m.Update(runes("1"))
	msgs = append(msgs, collect(cmd)...)

	if diff := cmp.Diff([]string{"1", "", "", ""}, characters(m.Fields())); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1"}, editedMsgs(msgs)); diff != "" {
		t.Errorf("edited mismatch (-want +got):\n%s", diff)
	}
	if got := filledMsgs(msgs); len(got) != 0 {
		t.Errorf("filled fired %v on first keystroke", got)
	}

	for _, r := range "234" {
		m, cmd = m.Update(runes(string(r)))
		msgs = append(msgs, collect(cmd)...)
	}

	if !m.Correct() {
		t.Error("code should be correct")
	}
	if diff := cmp.Diff([]bool{true}, filledMsgs(msgs)); diff != "" {
		t.Errorf("filled mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "12", "123", "1234"}, editedMsgs(msgs)); diff != "" {
		t.Errorf("edited mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceFromCorrect(t *testing.T) {
	m := newField(t, "1234")
	m, _ = m.Update(runes("1234"))

	m, cmd := m.Update(backspace)
	msgs := collect(cmd)

	if diff := cmp.Diff([]string{"1", "2", "3", ""}, characters(m.Fields())); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false}, filledMsgs(msgs)); diff != "" {
		t.Errorf("filled mismatch (-want +got):\n%s", diff)
	}
}

func TestPasteTooLong(t *testing.T) {
	m := newField(t, "ab")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true})
	msgs := collect(cmd)

	if diff := cmp.Diff([]string{"a", "b"}, characters(m.Fields())); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if m.Correct() {
		t.Error("too-long input must not be correct")
	}
	if m.Text() != "abc" {
		t.Errorf("Text() = %q, want abc", m.Text())
	}
	if got := filledMsgs(msgs); len(got) != 0 {
		t.Errorf("filled fired %v", got)
	}
}

func TestClearAfterCorrect(t *testing.T) {
	var filled []bool
	m := newField(t, "00").OnCodeFilled(func(c bool) { filled = append(filled, c) })

	m, _ = m.Update(runes("00"))
	m, cmd := m.Update(clearKey)

	if diff := cmp.Diff([]string{"", ""}, characters(m.Fields())); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false}, filledMsgs(collect(cmd))); diff != "" {
		t.Errorf("filled msgs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, filled); diff != "" {
		t.Errorf("filled callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbacksFromConfig(t *testing.T) {
	var edits []string
	var filled []bool
	m, err := New(Config{
		Code:         "42",
		Focused:      true,
		OnEdit:       func(s string) { edits = append(edits, s) },
		OnCodeFilled: func(c bool) { filled = append(filled, c) },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m, _ = m.Update(runes("4"))
	m, _ = m.Update(runes("2"))
	m, _ = m.Update(runes("2"))

	if diff := cmp.Diff([]string{"4", "42", "422"}, edits); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, filled); diff != "" {
		t.Errorf("filled mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleFocusWithTab(t *testing.T) {
	m := newField(t, "1234")
	m, _ = m.Update(runes("12"))

	m, cmd := m.Update(tab)
	if m.Focused() {
		t.Fatal("tab should blur the field")
	}
	if msgs := collect(cmd); len(editedMsgs(msgs)) != 0 {
		t.Error("toggling focus produced an edit")
	}

	// Keystrokes are ignored while blurred
	m, _ = m.Update(runes("3"))
	m, _ = m.Update(clearKey)
	if m.Text() != "12" {
		t.Errorf("blurred field accepted input: %q", m.Text())
	}

	m, _ = m.Update(tab)
	if !m.Focused() {
		t.Fatal("second tab should focus the field")
	}
	m, _ = m.Update(runes("3"))
	if m.Text() != "123" {
		t.Errorf("Text() = %q, want 123", m.Text())
	}
}

func TestToggleFocusWithClick(t *testing.T) {
	m, err := New(Config{Code: "12"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Focused() {
		t.Fatal("field should start blurred")
	}

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(click)
	if !m.Focused() {
		t.Error("left click should focus")
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m, _ = m.Update(release)
	if !m.Focused() {
		t.Error("release should not toggle focus")
	}
}

func TestSetTextAndReset(t *testing.T) {
	m := newField(t, "987")

	msgs := collect(m.SetText("987"))
	if diff := cmp.Diff([]bool{true}, filledMsgs(msgs)); diff != "" {
		t.Errorf("filled mismatch (-want +got):\n%s", diff)
	}

	msgs = collect(m.Reset())
	if diff := cmp.Diff([]bool{false}, filledMsgs(msgs)); diff != "" {
		t.Errorf("filled mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, editedMsgs(msgs)); diff != "" {
		t.Errorf("edited mismatch (-want +got):\n%s", diff)
	}
}

func TestWithStyleIsNoOp(t *testing.T) {
	m := newField(t, "1234")
	before := m.View()
	w, h := m.Size()

	odd := ui.DefaultSlotStyle()
	odd.Layout.SlotWidth = 9
	odd.Secure = true
	m = m.WithStyle(odd)

	if m.View() != before {
		t.Error("WithStyle changed rendering")
	}
	if w2, h2 := m.Size(); w2 != w || h2 != h {
		t.Error("WithStyle changed size")
	}
}

func TestViewMatchesSize(t *testing.T) {
	m := newField(t, "123456")
	m, _ = m.Update(runes("12"))

	w, h := m.Size()
	if w != 35 || h != 4 {
		t.Errorf("Size() = (%d, %d), want (35, 4)", w, h)
	}

	view := m.View()
	if lipgloss.Width(view) != w || lipgloss.Height(view) != h {
		t.Errorf("view is %dx%d, want %dx%d", lipgloss.Width(view), lipgloss.Height(view), w, h)
	}
	if !strings.Contains(view, "1") || !strings.Contains(view, "2") {
		t.Errorf("view missing typed characters:\n%s", view)
	}
}

func TestSecureViewMasks(t *testing.T) {
	style := ui.DefaultSlotStyle()
	style.Secure = true
	m, err := New(Config{Code: "5555", Style: style, Focused: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m, _ = m.Update(runes("55"))

	view := m.View()
	if strings.Contains(view, "5") {
		t.Errorf("secure view leaked input:\n%s", view)
	}
}

func TestHelpBindings(t *testing.T) {
	m := newField(t, "1")
	if got := len(m.Keys().ShortHelp()); got != 2 {
		t.Errorf("ShortHelp() has %d bindings, want 2", got)
	}
}

func TestPasteKeepsInputLiteral(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"tab", "a\tb"},
		{"newline", "a\nb"},
		{"control character", "a\x01b"},
		{"spaces", "a b "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newField(t, tt.code)

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.code), Paste: true})
			msgs := collect(cmd)

			if m.Text() != tt.code {
				t.Errorf("Text() = %q, want %q", m.Text(), tt.code)
			}
			if !m.Correct() {
				t.Error("pasting the exact code should be correct")
			}
			if diff := cmp.Diff([]bool{true}, filledMsgs(msgs)); diff != "" {
				t.Errorf("filled mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{tt.code}, editedMsgs(msgs)); diff != "" {
				t.Errorf("edited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditingKeysKeepLiteralText(t *testing.T) {
	m := newField(t, "ab\tcd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab\tcd!"), Paste: true})

	m, _ = m.Update(backspace)
	if m.Text() != "ab\tcd" || !m.Correct() {
		t.Errorf("after backspace Text() = %q, correct = %v", m.Text(), m.Correct())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if m.Text() != "ab\td" {
		t.Errorf("after delete Text() = %q, want %q", m.Text(), "ab\td")
	}

	// With a hidden echo, word deletion removes everything before the cursor
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.Text() != "d" {
		t.Errorf("after ctrl+w Text() = %q, want d", m.Text())
	}
}

func TestTypingAtCursor(t *testing.T) {
	m := newField(t, "123")
	m, _ = m.Update(runes("1"))
	m, _ = m.Update(runes("3"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(runes("2"))

	if m.Text() != "123" {
		t.Errorf("Text() = %q, want 123", m.Text())
	}
	if !m.Correct() {
		t.Error("expected correct after inserting at the cursor")
	}
}

func TestSpaceKey(t *testing.T) {
	m := newField(t, "a b")
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(runes("b"))

	if !m.Correct() {
		t.Errorf("Text() = %q, want %q", m.Text(), "a b")
	}
}

func TestAltKeysAreNotTyped(t *testing.T) {
	m := newField(t, "ab")
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})

	if m.Text() != "a" {
		t.Errorf("Text() = %q, want a", m.Text())
	}
}

func TestClickOutsideFieldIgnored(t *testing.T) {
	m, err := New(Config{Code: "12"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.SetOrigin(10, 4)
	w, h := m.Size()

	tests := []struct {
		name   string
		x, y   int
		toggle bool
	}{
		{"above", 10, 3, false},
		{"left", 9, 4, false},
		{"top-left cell", 10, 4, true},
		{"bottom-right cell", 10 + w - 1, 4 + h - 1, true},
		{"right", 10 + w, 4, false},
		{"below", 10, 4 + h, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := m.Focused()
			got, _ := m.Update(tea.MouseMsg{X: tt.x, Y: tt.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			if toggled := got.Focused() != before; toggled != tt.toggle {
				t.Errorf("toggled = %v, want %v", toggled, tt.toggle)
			}
		})
	}
}
