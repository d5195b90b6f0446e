package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Prev key.Binding // Previous option in the category picker
	Next key.Binding // Next option in the category picker

	// Actions
	New         key.Binding // Create new task
	NewCategory key.Binding // Create new custom category
	Archive     key.Binding // Archive selected task
	Enter       key.Binding // Confirm input / advance form

	// View
	ToggleArchive key.Binding // Toggle between active list and archive
	Help          key.Binding // Show help

	// General
	Quit   key.Binding // Quit application
	Escape key.Binding // Cancel/back
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev category"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next category"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		NewCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new category"),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		ToggleArchive: key.NewBinding(
			key.WithKeys("tab", "v"),
			key.WithHelp("tab", "toggle archive"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Archive, k.ToggleArchive, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.New, k.NewCategory, k.Archive, k.Enter},
		{k.ToggleArchive, k.Help, k.Escape, k.Quit},
	}
}
