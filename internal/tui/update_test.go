package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosuge/taskpocket/internal/domain"
)

func TestUpdate_NewTaskFlow(t *testing.T) {
	tasks := &memTaskRepository{}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "n")
	require.Equal(t, ModeInputTitle, m.mode)

	typeText(t, m, "Buy milk")
	press(t, m, "enter")
	require.Equal(t, ModeInputDesc, m.mode)

	typeText(t, m, "2 litres")
	press(t, m, "enter")
	require.Equal(t, ModePickCategory, m.mode)
	// Non-Urgent is preselected.
	require.Equal(t, 1, m.optionCursor)

	press(t, m, "enter")

	require.Equal(t, ModeNormal, m.mode)
	require.Len(t, tasks.active, 1)
	assert.Equal(t, "Buy milk", tasks.active[0].Title)
	assert.Equal(t, "2 litres", tasks.active[0].Description)
	assert.Equal(t, domain.KindNonUrgent, tasks.active[0].Category)
	assert.Equal(t, 1, m.total)
}

func TestUpdate_NewTaskFlow_PickUrgent(t *testing.T) {
	tasks := &memTaskRepository{}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "n")
	typeText(t, m, "Pay rent")
	press(t, m, "enter")
	press(t, m, "enter") // empty description
	press(t, m, "left")  // Non-Urgent -> Urgent
	press(t, m, "enter")

	require.Len(t, tasks.active, 1)
	assert.Equal(t, domain.KindUrgent, tasks.active[0].Category)
}

func TestUpdate_NewTaskFlow_PickCustomCategory(t *testing.T) {
	tasks := &memTaskRepository{}
	categories := &memCategoryRepository{
		categories: []domain.Category{{ID: "c1", Name: "Gym"}},
	}
	m := newTestModel(t, tasks, categories)

	press(t, m, "n")
	typeText(t, m, "Leg day")
	press(t, m, "enter")
	press(t, m, "enter")
	press(t, m, "right") // Non-Urgent -> Gym
	press(t, m, "enter")

	require.Len(t, tasks.active, 1)
	task := tasks.active[0]
	assert.Equal(t, domain.KindCustom, task.Category)
	require.NotNil(t, task.CustomCategory)
	assert.Equal(t, "Gym", task.CustomCategory.Name)
	assert.Equal(t, "Gym", task.CategoryName())
}

func TestUpdate_EmptyTitleNotSubmitted(t *testing.T) {
	tasks := &memTaskRepository{}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "n")
	press(t, m, "enter")

	// Still on the title field, nothing created.
	assert.Equal(t, ModeInputTitle, m.mode)
	assert.Empty(t, tasks.active)
}

func TestUpdate_EscapeCancelsForm(t *testing.T) {
	tasks := &memTaskRepository{}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "n")
	typeText(t, m, "Half-typed")
	press(t, m, "esc")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, tasks.active)
	assert.Empty(t, m.titleInput.Value())
}

func TestUpdate_ArchiveSelectedTask(t *testing.T) {
	tasks := &memTaskRepository{
		active: []domain.Task{
			{ID: "1", Title: "Laundry", Category: domain.KindNonUrgent},
			{ID: "2", Title: "Pay rent", Category: domain.KindUrgent},
		},
	}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	// The Non-Urgent group sorts first, so the cursor starts on
	// "Laundry".
	press(t, m, "a")

	require.Len(t, tasks.active, 1)
	assert.Equal(t, "Pay rent", tasks.active[0].Title)
	require.Len(t, tasks.archived, 1)
	assert.Equal(t, "Laundry", tasks.archived[0].Title)
	assert.Contains(t, m.status, "Laundry")
}

func TestUpdate_ArchiveInArchiveViewIsNoOp(t *testing.T) {
	tasks := &memTaskRepository{
		active:   []domain.Task{{ID: "1", Title: "Active", Category: domain.KindNonUrgent}},
		archived: []domain.Task{{ID: "2", Title: "Old", Category: domain.KindNonUrgent}},
	}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	press(t, m, "tab")
	require.Equal(t, ModeArchive, m.mode)
	press(t, m, "a")

	assert.Len(t, tasks.active, 1)
	assert.Len(t, tasks.archived, 1)
}

func TestUpdate_ToggleArchiveView(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	press(t, m, "tab")
	assert.Equal(t, ModeArchive, m.mode)
	press(t, m, "tab")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_NewCategoryFlow(t *testing.T) {
	categories := &memCategoryRepository{}
	m := newTestModel(t, &memTaskRepository{}, categories)

	press(t, m, "c")
	require.Equal(t, ModeInputCategory, m.mode)

	typeText(t, m, "Gym")
	press(t, m, "enter")

	require.Equal(t, ModeNormal, m.mode)
	require.Len(t, categories.categories, 1)
	assert.Equal(t, "Gym", categories.categories[0].Name)
	// The picker picked up the new category.
	require.Len(t, m.options, 3)
}

func TestUpdate_DuplicateCategoryWarns(t *testing.T) {
	categories := &memCategoryRepository{
		categories: []domain.Category{{ID: "c1", Name: "Gym"}},
	}
	m := newTestModel(t, &memTaskRepository{}, categories)

	press(t, m, "c")
	typeText(t, m, "Gym")
	press(t, m, "enter")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Contains(t, m.status, "already exists")
	assert.Nil(t, m.err)
	// The original record is untouched.
	require.Len(t, categories.categories, 1)
	assert.Equal(t, "c1", categories.categories[0].ID)
}

func TestUpdate_BlurFlushesBothLists(t *testing.T) {
	tasks := &memTaskRepository{
		active:   []domain.Task{{ID: "1", Title: "Active", Category: domain.KindNonUrgent}},
		archived: []domain.Task{{ID: "2", Title: "Old", Category: domain.KindUrgent}},
	}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	activeSaves := tasks.activeSaves
	archivedSaves := tasks.archivedSaves

	_, cmd := m.Update(tea.BlurMsg{})
	drain(t, m, cmd)

	assert.Equal(t, activeSaves+1, tasks.activeSaves)
	assert.Equal(t, archivedSaves+1, tasks.archivedSaves)
	// The lists themselves are unchanged.
	assert.Len(t, tasks.active, 1)
	assert.Len(t, tasks.archived, 1)
}

func TestUpdate_BlurFlushIsIdempotent(t *testing.T) {
	tasks := &memTaskRepository{
		active: []domain.Task{{ID: "1", Title: "Active", Category: domain.KindNonUrgent}},
	}
	m := newTestModel(t, tasks, &memCategoryRepository{})

	for range 3 {
		_, cmd := m.Update(tea.BlurMsg{})
		drain(t, m, cmd)
	}

	assert.Len(t, tasks.active, 1)
	assert.Equal(t, "Active", tasks.active[0].Title)
}

func TestUpdate_FocusReloadsData(t *testing.T) {
	tasks := &memTaskRepository{}
	m := newTestModel(t, tasks, &memCategoryRepository{})
	require.Equal(t, 0, m.total)

	// Another writer added a task while we were backgrounded.
	tasks.active = []domain.Task{{ID: "9", Title: "External", Category: domain.KindNonUrgent}}

	_, cmd := m.Update(tea.FocusMsg{})
	drain(t, m, cmd)

	assert.Equal(t, 1, m.total)
}

func TestUpdate_QuitReturnsSequenceCommand(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	// Flush-then-quit sequence; executing it must not panic.
	require.NotNil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_ErrorMessageShown(t *testing.T) {
	m := newTestModel(t, &memTaskRepository{}, &memCategoryRepository{})

	_, _ = m.Update(MsgError{Err: assert.AnError})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, assert.AnError, m.err)
}
