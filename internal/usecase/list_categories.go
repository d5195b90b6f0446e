package usecase

import (
	"context"

	"github.com/skosuge/taskpocket/internal/domain"
)

// ListCategoriesOutput contains the custom category list.
type ListCategoriesOutput struct {
	Categories []domain.Category
}

// ListCategories is the use case for listing custom categories.
type ListCategories struct {
	categories domain.CategoryRepository
}

// NewListCategories creates a new ListCategories use case.
func NewListCategories(categories domain.CategoryRepository) *ListCategories {
	return &ListCategories{categories: categories}
}

// Execute returns the stored custom categories.
func (uc *ListCategories) Execute(_ context.Context) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{Categories: uc.categories.LoadAll()}, nil
}
