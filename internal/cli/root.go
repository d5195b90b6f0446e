// Package cli provides the command-line interface for taskpocket.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupCategory = "category"
)

// NewRootCommand creates the root command for taskpocket.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskpocket",
		Short: "Single-screen task tracker",
		Long: `taskpocket is a small task tracker: tasks with a title, description
and a category (urgent, non-urgent, or a custom category of your own),
an append-only archive, and whole-snapshot persistence to local
storage.

Run without arguments to open the interactive screen.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the interactive screen.
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupCategory, Title: "Category Management:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	archiveCmd := newArchiveCommand(c)
	archiveCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	categoryCmd := newCategoryCommand(c)
	categoryCmd.GroupID = groupCategory

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		listCmd,
		archiveCmd,
		exportCmd,
		categoryCmd,
		tuiCmd,
		configCmd,
	)

	return root
}
