package verifier

import "github.com/rivo/uniseg"

// Code is the expected one-time code. It fixes both the number of slots and
// the value that counts as correct. The zero Code is invalid.
type Code struct {
	value string
	chars []string
}

// NewCode validates s and returns it as a Code.
// An empty string returns ErrEmptyCode.
func NewCode(s string) (Code, error) {
	chars := splitCharacters(s)
	if len(chars) == 0 {
		return Code{}, ErrEmptyCode
	}
	return Code{value: s, chars: chars}, nil
}

// MustCode is like NewCode but panics on an empty code.
// Intended for constants and tests.
func MustCode(s string) Code {
	c, err := NewCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of slots, which is the number of characters in the code.
func (c Code) Len() int {
	return len(c.chars)
}

// String returns the code exactly as supplied.
func (c Code) String() string {
	return c.value
}

// IsZero reports whether c was never constructed.
func (c Code) IsZero() bool {
	return len(c.chars) == 0
}

// splitCharacters segments s into user-perceived characters.
func splitCharacters(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, uniseg.GraphemeClusterCount(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}
