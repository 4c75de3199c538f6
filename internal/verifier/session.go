package verifier

// Config carries the required code and the optional callbacks of a Session.
type Config struct {
	Code Code

	// OnCodeFilled receives the correctness flag each time it changes.
	OnCodeFilled func(correct bool)

	// OnEdit receives the full raw text after every edit.
	OnEdit func(text string)
}

// Change describes the result of one edit.
type Change struct {
	Text           string
	Fields         []Field
	Correct        bool
	CorrectChanged bool
}

// Session owns the raw input of one widget and derives its slots from it.
type Session struct {
	code   Code
	raw    string
	fields []Field

	correct bool // Last correctness value; the baseline for notifications
	focused bool

	onCodeFilled func(bool)
	onEdit       func(string)
}

// New creates a session for cfg.Code with empty input.
//
// The first correctness value is computed here and becomes the baseline, so
// no callback fires during construction.
func New(cfg Config) (*Session, error) {
	if cfg.Code.IsZero() {
		return nil, ErrEmptyCode
	}

	s := &Session{
		code:         cfg.Code,
		onCodeFilled: cfg.OnCodeFilled,
		onEdit:       cfg.OnEdit,
	}
	s.fields, s.correct = Rebuild("", s.code)
	return s, nil
}

// OnCodeFilled sets the correctness callback and returns the session.
func (s *Session) OnCodeFilled(fn func(correct bool)) *Session {
	s.onCodeFilled = fn
	return s
}

// OnEdit sets the edit callback and returns the session.
func (s *Session) OnEdit(fn func(text string)) *Session {
	s.onEdit = fn
	return s
}

// TextChanged replaces the raw input with text.
//
// OnEdit is called with text unconditionally. OnCodeFilled is called with the
// new correctness only when it differs from the previous value.
func (s *Session) TextChanged(text string) Change {
	s.raw = text
	fields, correct := Rebuild(text, s.code)
	s.fields = fields

	if s.onEdit != nil {
		s.onEdit(text)
	}

	changed := s.updateCorrect(correct)
	if changed && s.onCodeFilled != nil {
		s.onCodeFilled(correct)
	}

	return Change{
		Text:           text,
		Fields:         s.Fields(),
		Correct:        correct,
		CorrectChanged: changed,
	}
}

// updateCorrect stores correct and reports whether it differs from the
// previous value.
func (s *Session) updateCorrect(correct bool) bool {
	changed := correct != s.correct
	s.correct = correct
	return changed
}

// Reset clears the input. It is an ordinary edit to the empty string.
func (s *Session) Reset() Change {
	return s.TextChanged("")
}

// ToggleFocus flips whether the hidden input accepts keystrokes and returns
// the new state. Input and fields are left untouched.
func (s *Session) ToggleFocus() bool {
	s.focused = !s.focused
	return s.focused
}

// SetFocused sets the focus state directly.
func (s *Session) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the hidden input is active.
func (s *Session) Focused() bool {
	return s.focused
}

// Code returns the expected code.
func (s *Session) Code() Code {
	return s.code
}

// Text returns the current raw input.
func (s *Session) Text() string {
	return s.raw
}

// Fields returns a copy of the current slots.
func (s *Session) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Correct reports whether the current input equals the code.
func (s *Session) Correct() bool {
	return s.correct
}

// Size returns the widget size for this session's code under layout.
func (s *Session) Size(layout Layout) (width, height int) {
	return layout.Size(s.code.Len())
}
