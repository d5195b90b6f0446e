package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/skosuge/taskpocket/internal/infra/config"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging defaults, the config
file and environment overrides.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			path := config.NewLoader().Path()
			if path != "" {
				_, _ = fmt.Fprintln(w, "[Loaded from]")
				if _, err := os.Stat(path); err == nil {
					_, _ = fmt.Fprintf(w, "- %s\n", path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", path)
				}
				_, _ = fmt.Fprintln(w)
			}

			content, err := toml.Marshal(c.Config)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprintln(w, "[Effective]")
			_, _ = w.Write(content)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a config file with the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.NewLoader().WriteDefault()
			if err != nil {
				return err
			}
			if !created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
