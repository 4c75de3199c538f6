// Package tui implements the full-screen host for the code field.
//
// The host follows the Elm architecture like any Bubble Tea program: it owns a
// codefield.Model, routes messages to it, and reacts to the field's
// EditedMsg and CodeFilledMsg.
//
// # Screen
//
//	┌──────────────────────────────────────────────┐
//	│ CODE VERIFIER v0.1.0  github.com/muurk/...   │
//	│──────────────────────────────────────────────│
//	│          Enter the 6-character code          │
//	│     ╭───╮ ╭───╮ ╭───╮ ╭───╮ ╭───╮ ╭───╮      │
//	│     │ 1 │ │ 2 │ │   │ │   │ │   │ │   │      │
//	│     ╰───╯ ╰───╯ ╰───╯ ╰───╯ ╰───╯ ╰───╯      │
//	│     ───── ───── ───── ───── ───── ─────      │
//	│                 2/6 entered                  │
//	│──────────────────────────────────────────────│
//	│ tab/click focus • ctrl+u clear • esc quit    │
//	└──────────────────────────────────────────────┘
//
// # Usage
//
//	res, err := tui.Run(tui.Options{Code: "123456", ExitOnSuccess: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Correct)
package tui
