package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/skosuge/taskpocket/internal/domain"
)

func TestView_GroupedTasks(t *testing.T) {
	tasks := &memTaskRepository{
		active: []domain.Task{
			{ID: "1", Title: "Pay rent", Category: domain.KindUrgent},
			{ID: "2", Title: "Laundry", Category: domain.KindNonUrgent},
			{ID: "3", Title: "Leg day", Category: domain.KindCustom,
				CustomCategory: &domain.Category{ID: "c1", Name: "Gym"}},
		},
	}
	categories := &memCategoryRepository{
		categories: []domain.Category{{ID: "c1", Name: "Gym"}},
	}
	m := newTestModel(t, tasks, categories)
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()

	assert.Contains(t, view, "Urgent")
	assert.Contains(t, view, "Non-Urgent")
	assert.Contains(t, view, "Gym")
	assert.Contains(t, view, "Pay rent")
	assert.Contains(t, view, "Laundry")
	assert.Contains(t, view, "Leg day")
	assert.Contains(t, view, "3 tasks")
}

func TestView_EmptyList(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	view := m.View()

	assert.Contains(t, view, "No tasks")
}

func TestView_ArchiveMode(t *testing.T) {
	tasks := &memTaskRepository{
		archived: []domain.Task{
			{ID: "1", Title: "Old chore", Category: domain.KindNonUrgent},
		},
	}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "tab")
	view := m.View()

	assert.Contains(t, view, "archive")
	assert.Contains(t, view, "Old chore")
	assert.Contains(t, view, "[Non-Urgent]")
}

func TestView_TaskForm(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	press(t, m, "n")
	view := m.View()

	assert.Contains(t, view, "New task")
}

func TestView_CategoryPickerShowsOptions(t *testing.T) {
	categories := &memCategoryRepository{
		categories: []domain.Category{{ID: "c1", Name: "Gym"}},
	}
	m := newTestModel(t, &memTaskRepository{}, categories)

	press(t, m, "n")
	typeText(t, m, "Task")
	press(t, m, "enter")
	press(t, m, "enter")
	view := m.View()

	assert.Contains(t, view, "Urgent")
	assert.Contains(t, view, "Non-Urgent")
	assert.Contains(t, view, "Gym")
}
