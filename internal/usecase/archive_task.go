package usecase

import (
	"context"
	"fmt"

	"github.com/skosuge/taskpocket/internal/domain"
)

// ArchiveTaskInput contains the parameters for archiving a task.
type ArchiveTaskInput struct {
	Index int // Position in the active list
}

// ArchiveTaskOutput contains the result of archiving a task.
type ArchiveTaskOutput struct {
	Task     domain.Task // The task that was moved (zero value if none)
	Archived bool        // False when the index was out of range
}

// ArchiveTask is the use case for moving a task from the active list
// to the archive. The in-memory move is atomic; the two snapshots are
// persisted separately, which is an accepted weak-consistency boundary
// of the snapshot layout.
type ArchiveTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewArchiveTask creates a new ArchiveTask use case.
func NewArchiveTask(tasks domain.TaskRepository, logger domain.Logger) *ArchiveTask {
	return &ArchiveTask{tasks: tasks, logger: logger}
}

// Execute archives the task at the given index. An out-of-range index
// is a no-op: both lists are left unchanged and no error is returned.
func (uc *ArchiveTask) Execute(_ context.Context, in ArchiveTaskInput) (*ArchiveTaskOutput, error) {
	active := uc.tasks.LoadActive()
	archived := uc.tasks.LoadArchived()

	newActive, newArchived, ok := domain.ArchiveTask(active, archived, in.Index)
	if !ok {
		return &ArchiveTaskOutput{Archived: false}, nil
	}

	moved := newArchived[len(newArchived)-1]
	uc.tasks.SaveActive(newActive)
	uc.tasks.SaveArchived(newArchived)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("archived: %q", moved.Title))
	}

	return &ArchiveTaskOutput{Task: moved, Archived: true}, nil
}
