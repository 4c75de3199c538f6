// Package ui provides the shared look of the codeverifier CLI.
//
// It owns the lipgloss palette, the slot renderer used by both the interactive
// code field and the non-interactive check command, and a Printer for
// "run once and exit" output.
//
// # Slots
//
// RenderSlots draws one rounded box per field with a carrier line beneath:
//
//	╭───╮ ╭───╮ ╭───╮ ╭───╮
//	│ 1 │ │ 2 │ │   │ │   │
//	╰───╯ ╰───╯ ╰───╯ ╰───╯
//	───── ───── ───── ─────
//
// The rendered block always measures SlotStyle.Layout.Size(len(fields)).
// Border colors follow the verdict: the active slot is highlighted while the
// code is incomplete, every slot turns green once the code is correct and red
// once all slots are filled with a wrong code.
//
// # Printer
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Code Check", "codeverifier check", map[string]string{"Slots": "4"})
//	p.PrintSlots(fields, correct, ui.DefaultSlotStyle())
//	p.PrintSuccess("Code accepted", nil)
//
// # Logging Integration
//
// Zap logging is silent unless CODEVERIFIER_LOG_LEVEL is set, so curated
// output is never interleaved with log lines.
package ui
