// Package verifier holds the framework-free model behind the code entry widget.
//
// The package has two halves:
//
//   - Rebuild: a pure function projecting the raw typed text onto exactly N
//     slots (one per character of the expected code) and deciding whether
//     the text equals the code.
//   - Session: the small stateful shell around Rebuild. It owns the raw
//     input, tracks focus, and notifies its owner through two callbacks.
//
// Nothing here depends on a rendering framework, so every rule can be tested
// without a terminal. The Bubble Tea component in internal/ui/codefield drives
// a Session and only draws what it reports.
//
// # Characters
//
// A slot holds one user-perceived character (a grapheme cluster), so "é"
// written as "e" plus a combining accent fills a single slot. Correctness is
// a plain byte-for-byte comparison with the code; no normalization is applied.
//
// # Notifications
//
//	s, err := verifier.New(verifier.Config{Code: verifier.MustCode("1234")})
//	if err != nil {
//	    return err
//	}
//	s.OnEdit(func(text string) { ... })
//	s.OnCodeFilled(func(correct bool) { ... })
//
//	s.TextChanged("1")    // OnEdit("1"); correctness still false, no OnCodeFilled
//	s.TextChanged("1234") // OnEdit("1234"); OnCodeFilled(true)
//
// OnEdit fires on every edit. OnCodeFilled fires only when correctness flips,
// and never for the value computed when the session is created.
//
// # Thread Safety
//
// A Session is owned by a single event loop and is not safe for concurrent use.
package verifier
