// Package codefield is the Bubble Tea code entry widget.
//
// A Model draws one slot per character of the expected code. Typing goes to a
// bubbles/textinput that is never rendered; after each change its value is fed
// to a verifier.Session and the slots are redrawn from the result.
//
// # Usage
//
//	field, err := codefield.New(codefield.Config{Code: "123456", Focused: true})
//	if err != nil {
//	    return err
//	}
//	field = field.OnCodeFilled(func(correct bool) { ... })
//
// Parents embedding the field can also react to its messages instead of
// callbacks:
//
//	case codefield.CodeFilledMsg:
//	    if msg.Correct { return m, tea.Quit }
//	case codefield.EditedMsg:
//	    m.status = fmt.Sprintf("%d typed", len(msg.Text))
//
// CodeFilledMsg and OnCodeFilled are only produced when correctness flips,
// never for the initial empty state. EditedMsg and OnEdit follow every edit.
//
// # Keys
//
// Tab or a left click toggles focus, ctrl+u clears. While blurred, keystrokes
// are ignored and the slots keep their content.
package codefield
