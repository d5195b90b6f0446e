package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Category    string
		Custom      string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task on the active list.

Examples:
  # An urgent task
  taskpocket add --title "Pay rent" --category urgent

  # A task under a custom category (create it first)
  taskpocket category add Gym
  taskpocket add --title "Leg day" --custom Gym`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.AddTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Category:    domain.CategoryKind(opts.Category),
			}
			if opts.Custom != "" {
				input.Category = domain.KindCustom
				input.CustomCategoryName = opts.Custom
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&opts.Category, "category", "nonUrgent", "Category: urgent or nonUrgent")
	cmd.Flags().StringVar(&opts.Custom, "custom", "", "Custom category name (overrides --category)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var showArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showArchived {
				out, err := c.ListArchivedUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				if len(out.Tasks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Archive is empty.")
					return nil
				}
				for i, t := range out.Tasks {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s  [%s]%s\n", i+1, t.Title, t.CategoryName(), doneMark(t))
				}
				return nil
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if out.Total == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No active tasks.")
				return nil
			}
			index := 0
			for _, group := range out.Groups {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group.Name)
				for _, t := range group.Tasks {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s%s\n", index+1, t.Title, doneMark(t))
					if t.Description != "" {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", t.Description)
					}
					index++
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showArchived, "archived", false, "Show the archive instead of the active list")

	return cmd
}

// newArchiveCommand creates the archive command.
func newArchiveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <number>",
		Short: "Move a task from the active list to the archive",
		Long: `Move a task to the archive by its number, 1-based as printed by
'taskpocket list'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}

			// The displayed numbering follows the grouped projection,
			// not the stored list. Resolve the selected task there,
			// then locate it in the stored list by identity.
			index, err := storedIndexForPosition(cmd, c, position)
			if err != nil {
				return err
			}

			uc := c.ArchiveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ArchiveTaskInput{Index: index})
			if err != nil {
				return err
			}
			if !out.Archived {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to archive at that position.")
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Archived %q\n", out.Task.Title)
			return nil
		},
	}

	return cmd
}

// storedIndexForPosition maps a 1-based display number from the grouped
// list back to the task's index in the stored active list. Returns -1
// when the number is out of range.
func storedIndexForPosition(cmd *cobra.Command, c *app.Container, position int) (int, error) {
	out, err := c.ListTasksUseCase().Execute(cmd.Context())
	if err != nil {
		return -1, err
	}

	var flat []domain.Task
	for _, group := range out.Groups {
		flat = append(flat, group.Tasks...)
	}
	if position < 1 || position > len(flat) {
		return -1, nil
	}
	target := flat[position-1]

	for i, t := range c.Tasks.LoadActive() {
		if t.Same(target) {
			return i, nil
		}
	}
	return -1, nil
}

func doneMark(t domain.Task) string {
	if t.Done {
		return " (done)"
	}
	return ""
}
