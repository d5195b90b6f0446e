package usecase

import (
	"context"

	"github.com/skosuge/taskpocket/internal/domain"
)

// ListTasksOutput contains the grouped projection of the active list.
type ListTasksOutput struct {
	Groups []domain.TaskGroup // Active tasks grouped by category name
	Total  int                // Total number of active tasks
}

// ListTasks is the use case for the grouped active-list view.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the active tasks grouped by category name. The
// projection never mutates the persisted order.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	active := uc.tasks.LoadActive()
	return &ListTasksOutput{
		Groups: domain.GroupTasks(active),
		Total:  len(active),
	}, nil
}
