package usecase

import (
	"context"
	"fmt"

	"github.com/skosuge/taskpocket/internal/domain"
)

// AddCategoryInput contains the parameters for creating a custom
// category.
type AddCategoryInput struct {
	Name string // Category name (required, unique)
}

// AddCategoryOutput contains the result of creating a category.
type AddCategoryOutput struct {
	CategoryID string // The ID of the created category
}

// AddCategory is the use case for creating a custom category.
type AddCategory struct {
	categories domain.CategoryRepository
	ids        domain.IDGenerator
	logger     domain.Logger
}

// NewAddCategory creates a new AddCategory use case.
func NewAddCategory(categories domain.CategoryRepository, ids domain.IDGenerator, logger domain.Logger) *AddCategory {
	return &AddCategory{
		categories: categories,
		ids:        ids,
		logger:     logger,
	}
}

// Execute creates a new category. A duplicate name is detected before
// insertion and returns ErrDuplicateCategory; the caller surfaces the
// warning and nothing is inserted.
func (uc *AddCategory) Execute(_ context.Context, in AddCategoryInput) (*AddCategoryOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyCategoryName
	}

	list := uc.categories.LoadAll()
	if domain.ContainsCategoryName(list, in.Name) {
		return nil, domain.ErrDuplicateCategory
	}

	category := domain.Category{
		ID:   uc.ids.NewID(),
		Name: in.Name,
	}
	list = domain.UpsertCategory(list, category)
	uc.categories.SaveAll(list)

	if uc.logger != nil {
		uc.logger.Info("category", fmt.Sprintf("created: %q", in.Name))
	}

	return &AddCategoryOutput{CategoryID: category.ID}, nil
}
