package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrDuplicateCategory = errors.New("category with this name already exists")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrCategoryNotFound  = errors.New("custom category not found")
)
