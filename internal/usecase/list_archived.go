package usecase

import (
	"context"

	"github.com/skosuge/taskpocket/internal/domain"
)

// ListArchivedOutput contains the archived task list in insertion
// order (the archive is append-only).
type ListArchivedOutput struct {
	Tasks []domain.Task
}

// ListArchived is the use case for browsing the archive.
type ListArchived struct {
	tasks domain.TaskRepository
}

// NewListArchived creates a new ListArchived use case.
func NewListArchived(tasks domain.TaskRepository) *ListArchived {
	return &ListArchived{tasks: tasks}
}

// Execute returns the archived tasks.
func (uc *ListArchived) Execute(_ context.Context) (*ListArchivedOutput, error) {
	return &ListArchivedOutput{Tasks: uc.tasks.LoadArchived()}, nil
}
