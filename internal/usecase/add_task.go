// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/skosuge/taskpocket/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Title              string              // Task title (required)
	Description        string              // Task description (optional)
	CustomCategoryName string              // Custom category name (required when Category is custom)
	Category           domain.CategoryKind // urgent / nonUrgent / custom (empty = nonUrgent)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	TaskID string // The ID of the created task
}

// AddTask is the use case for creating a new task and persisting the
// active list.
type AddTask struct {
	tasks      domain.TaskRepository
	categories domain.CategoryRepository
	ids        domain.IDGenerator
	logger     domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, categories domain.CategoryRepository, ids domain.IDGenerator, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:      tasks,
		categories: categories,
		ids:        ids,
		logger:     logger,
	}
}

// Execute creates a new task with the given input.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	kind := in.Category
	if kind == "" {
		kind = domain.KindNonUrgent
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}

	task := domain.Task{
		ID:          uc.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    kind,
	}

	// Resolve the custom category reference by name. The reference is
	// by value; the task carries a copy of the category record.
	if kind == domain.KindCustom {
		found := false
		for _, c := range uc.categories.LoadAll() {
			if c.Name == in.CustomCategoryName {
				ref := c
				task.CustomCategory = &ref
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, in.CustomCategoryName)
		}
	}

	active := uc.tasks.LoadActive()
	active = append(active, task)
	uc.tasks.SaveActive(active)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created: %q", in.Title))
	}

	return &AddTaskOutput{TaskID: task.ID}, nil
}
