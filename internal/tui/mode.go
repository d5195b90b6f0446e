// Package tui provides the terminal user interface for taskpocket.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Default navigation mode
	ModeInputTitle                // Title input mode (for new task)
	ModeInputDesc                 // Description input mode (for new task)
	ModePickCategory              // Category picker mode (for new task)
	ModeInputCategory             // Category name input mode (for new category)
	ModeArchive                   // Archive view mode
	ModeHelp                      // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModePickCategory:
		return "pick_category"
	case ModeInputCategory:
		return "input_category"
	case ModeArchive:
		return "archive"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputDesc, ModeInputCategory:
		return true
	case ModeNormal, ModePickCategory, ModeArchive, ModeHelp:
		return false
	}
	return false
}
