package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	Urgent    lipgloss.Color
	NonUrgent lipgloss.Color
	Custom    lipgloss.Color
	GroupLine lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Urgent:    lipgloss.Color("#D63031"), // Red
	NonUrgent: lipgloss.Color("#74B9FF"), // Light blue
	Custom:    lipgloss.Color("#A29BFE"), // Lavender
	GroupLine: lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	HeaderText lipgloss.Style

	GroupHeader  lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDesc     lipgloss.Style
	TaskDone     lipgloss.Style

	InputLabel  lipgloss.Style
	PickerItem  lipgloss.Style
	PickerFocus lipgloss.Style

	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Colors.GroupLine),
		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		GroupHeader: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true).
			MarginTop(1),
		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),
		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		PickerItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Padding(0, 1),
		PickerFocus: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Warning: lipgloss.NewStyle().
			Foreground(Colors.Warning),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}
