package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosuge/taskpocket/internal/domain"
)

func TestCategoryAddCommand_CreatesCategory(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.execute(t, "category", "add", "Gym")

	require.NoError(t, err)
	assert.Contains(t, stdout, `Created category "Gym"`)
	require.Len(t, env.categories.categories, 1)
	assert.Equal(t, "Gym", env.categories.categories[0].Name)
}

func TestCategoryAddCommand_Duplicate_WarnsWithoutFailing(t *testing.T) {
	env := newTestEnv()
	env.categories.categories = []domain.Category{{ID: "c1", Name: "Gym"}}

	_, stderr, err := env.execute(t, "category", "add", "Gym")

	require.NoError(t, err)
	assert.Contains(t, stderr, "already exists")
	// The existing record is untouched.
	require.Len(t, env.categories.categories, 1)
	assert.Equal(t, "c1", env.categories.categories[0].ID)
}

func TestCategoryAddCommand_EmptyName_Errors(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.execute(t, "category", "add", "")

	assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)
}

func TestCategoryListCommand_ListsNames(t *testing.T) {
	env := newTestEnv()
	env.categories.categories = []domain.Category{
		{ID: "c1", Name: "Gym"},
		{ID: "c2", Name: "Errands"},
	}

	stdout, _, err := env.execute(t, "category", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Gym")
	assert.Contains(t, stdout, "Errands")
}

func TestCategoryListCommand_Empty(t *testing.T) {
	env := newTestEnv()

	stdout, _, err := env.execute(t, "category", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No custom categories.")
}
