package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/skosuge/taskpocket/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive screen",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the single-screen interactive UI.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
