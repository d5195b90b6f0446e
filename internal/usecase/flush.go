package usecase

import (
	"context"

	"github.com/skosuge/taskpocket/internal/domain"
)

// FlushInput carries the in-memory lists to persist.
type FlushInput struct {
	Active   []domain.Task
	Archived []domain.Task
}

// Flush is the use case for the losing-foreground-focus save: an
// unconditional full save of both task lists. There is no bound on how
// often the trigger fires, so the operation is idempotent by
// construction (saves overwrite whole snapshots).
type Flush struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewFlush creates a new Flush use case.
func NewFlush(tasks domain.TaskRepository, logger domain.Logger) *Flush {
	return &Flush{tasks: tasks, logger: logger}
}

// Execute saves both task lists.
func (uc *Flush) Execute(_ context.Context, in FlushInput) error {
	uc.tasks.SaveActive(in.Active)
	uc.tasks.SaveArchived(in.Archived)
	if uc.logger != nil {
		uc.logger.Debug("flush", "saved active and archived snapshots")
	}
	return nil
}
