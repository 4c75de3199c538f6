package codefield

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings handled by the code field itself.
// Every other key goes to the hidden input while it is focused.
type KeyMap struct {
	ToggleFocus key.Binding
	Clear       key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab/click", "focus"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleFocus, k.Clear}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleFocus, k.Clear},
	}
}
