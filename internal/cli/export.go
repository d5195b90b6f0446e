package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export active and archived tasks as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			uc := c.ExportTasksUseCase(out)
			result, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d active and %d archived tasks to %s\n",
					result.ActiveCount, result.ArchivedCount, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
