package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/usecase"
)

// newCategoryCommand creates the category command with subcommands.
func newCategoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage custom categories",
	}

	cmd.AddCommand(
		newCategoryAddCommand(c),
		newCategoryListCommand(c),
	)

	return cmd
}

// newCategoryAddCommand creates the category add subcommand.
func newCategoryAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddCategoryUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.AddCategoryInput{Name: args[0]})
			if errors.Is(err, domain.ErrDuplicateCategory) {
				// Surfaced as a warning, not a failure; nothing was inserted.
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: category %q already exists\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created category %q\n", args[0])
			return nil
		},
	}
}

// newCategoryListCommand creates the category list subcommand.
func newCategoryListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListCategoriesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Categories) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No custom categories.")
				return nil
			}
			for _, category := range out.Categories {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), category.Name)
			}
			return nil
		},
	}
}
