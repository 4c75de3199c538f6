package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the code field full screen until the user quits, or until the
// code is correct when opts.ExitOnSuccess is set.
func Run(opts Options, programOpts ...tea.ProgramOption) (Result, error) {
	app, err := NewAppModel(opts)
	if err != nil {
		return Result{}, err
	}

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, programOpts...)
	final, err := tea.NewProgram(app, programOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("code field exited with error: %w", err)
	}

	return final.(AppModel).Result(), nil
}
