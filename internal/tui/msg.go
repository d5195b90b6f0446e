package tui

import "github.com/skosuge/taskpocket/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgDataLoaded is sent when tasks and categories are loaded from the
// repositories.
type MsgDataLoaded struct {
	Groups     []domain.TaskGroup
	Archived   []domain.Task
	Categories []domain.Category
	Total      int
}

func (MsgDataLoaded) sealed() {}

// MsgTaskAdded is sent when a new task is created.
type MsgTaskAdded struct {
	TaskID string
}

func (MsgTaskAdded) sealed() {}

// MsgTaskArchived is sent when a task is moved to the archive.
type MsgTaskArchived struct {
	Title    string
	Archived bool
}

func (MsgTaskArchived) sealed() {}

// MsgCategoryAdded is sent when a custom category is created.
type MsgCategoryAdded struct {
	Name string
}

func (MsgCategoryAdded) sealed() {}

// MsgCategoryExists is sent when category creation hit an existing name.
// The insert was skipped; the UI shows a warning.
type MsgCategoryExists struct {
	Name string
}

func (MsgCategoryExists) sealed() {}

// MsgFlushed is sent when both task lists have been written out.
type MsgFlushed struct{}

func (MsgFlushed) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
