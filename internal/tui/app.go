package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skosuge/taskpocket/internal/app"
	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/usecase"
)

// categoryOption is one entry in the category picker.
type categoryOption struct {
	Kind       domain.CategoryKind
	CustomName string
}

// Label returns the display label for the option.
func (o categoryOption) Label() string {
	if o.Kind == domain.KindCustom {
		return o.CustomName
	}
	return o.Kind.Label()
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	groups     []domain.TaskGroup
	archived   []domain.Task
	categories []domain.Category
	options    []categoryOption

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	titleInput    textinput.Model
	descInput     textinput.Model
	categoryInput textinput.Model

	// Scalar state (smaller types last)
	status       string
	mode         Mode
	width        int
	height       int
	cursor       int
	optionCursor int
	total        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	ci := textinput.New()
	ci.Placeholder = "Category name"
	ci.CharLimit = 100

	return &Model{
		container:     c,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		titleInput:    ti,
		descInput:     di,
		categoryInput: ci,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadData()
}

// loadData returns a command that loads tasks and categories from the
// repositories.
func (m *Model) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		tasks, err := m.container.ListTasksUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		archived, err := m.container.ListArchivedUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		categories, err := m.container.ListCategoriesUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}

		return MsgDataLoaded{
			Groups:     tasks.Groups,
			Archived:   archived.Tasks,
			Categories: categories.Categories,
			Total:      tasks.Total,
		}
	}
}

// addTask returns a command that creates a new task.
func (m *Model) addTask(title, description string, option categoryOption) tea.Cmd {
	return func() tea.Msg {
		input := usecase.AddTaskInput{
			Title:       title,
			Description: description,
			Category:    option.Kind,
		}
		if option.Kind == domain.KindCustom {
			input.CustomCategoryName = option.CustomName
		}

		out, err := m.container.AddTaskUseCase().Execute(context.Background(), input)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{TaskID: out.TaskID}
	}
}

// addCategory returns a command that creates a custom category.
// An existing name is reported as a warning, not an error.
func (m *Model) addCategory(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.AddCategoryUseCase().Execute(context.Background(), usecase.AddCategoryInput{Name: name})
		if errors.Is(err, domain.ErrDuplicateCategory) {
			return MsgCategoryExists{Name: name}
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCategoryAdded{Name: name}
	}
}

// archiveTask returns a command that moves the task with the given ID
// from the active list to the archive.
func (m *Model) archiveTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		index := -1
		for i, t := range m.container.Tasks.LoadActive() {
			if t.ID == taskID {
				index = i
				break
			}
		}

		out, err := m.container.ArchiveTaskUseCase().Execute(context.Background(), usecase.ArchiveTaskInput{Index: index})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskArchived{Title: out.Task.Title, Archived: out.Archived}
	}
}

// flush returns a command that writes both task lists out. Used when
// the terminal loses focus and on quit; repeating it is harmless.
func (m *Model) flush() tea.Cmd {
	return func() tea.Msg {
		input := usecase.FlushInput{
			Active:   m.container.Tasks.LoadActive(),
			Archived: m.container.Tasks.LoadArchived(),
		}
		if err := m.container.FlushUseCase().Execute(context.Background(), input); err != nil {
			return MsgError{Err: err}
		}
		return MsgFlushed{}
	}
}

// flatTasks returns the visible tasks in display order.
func (m *Model) flatTasks() []domain.Task {
	if m.mode == ModeArchive {
		return m.archived
	}
	var tasks []domain.Task
	for _, group := range m.groups {
		tasks = append(tasks, group.Tasks...)
	}
	return tasks
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.flatTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return &tasks[m.cursor]
}

// buildOptions rebuilds the category picker options from the loaded
// custom categories.
func (m *Model) buildOptions() {
	options := []categoryOption{
		{Kind: domain.KindUrgent},
		{Kind: domain.KindNonUrgent},
	}
	for _, category := range m.categories {
		options = append(options, categoryOption{Kind: domain.KindCustom, CustomName: category.Name})
	}
	m.options = options
	if m.optionCursor >= len(options) {
		m.optionCursor = len(options) - 1
	}
}

// clampCursor keeps the cursor inside the visible task list.
func (m *Model) clampCursor() {
	count := len(m.flatTasks())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
