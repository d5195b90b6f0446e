package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertCategory_Append(t *testing.T) {
	list := []Category{{ID: "1", Name: "Home"}}

	result := UpsertCategory(list, Category{ID: "2", Name: "Work"})

	assert.Equal(t, []Category{
		{ID: "1", Name: "Home"},
		{ID: "2", Name: "Work"},
	}, result)
}

func TestUpsertCategory_ReplaceInPlace(t *testing.T) {
	list := []Category{
		{ID: "1", Name: "Home"},
		{ID: "2", Name: "Work"},
		{ID: "3", Name: "Gym"},
	}

	result := UpsertCategory(list, Category{ID: "99", Name: "Work"})

	// Position preserved, ID replaced.
	assert.Equal(t, []Category{
		{ID: "1", Name: "Home"},
		{ID: "99", Name: "Work"},
		{ID: "3", Name: "Gym"},
	}, result)

	// Input untouched.
	assert.Equal(t, "2", list[1].ID)
}

func TestDedupCategoriesByName(t *testing.T) {
	list := []Category{
		{ID: "1", Name: "Home"},
		{ID: "2", Name: "Work"},
		{ID: "3", Name: "Home"},
	}

	result := DedupCategoriesByName(list)

	// First occurrence wins, order preserved.
	assert.Equal(t, []Category{
		{ID: "1", Name: "Home"},
		{ID: "2", Name: "Work"},
	}, result)
}

func TestDedupCategoriesByName_NoDuplicates(t *testing.T) {
	list := []Category{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	assert.Equal(t, list, DedupCategoriesByName(list))
}

func TestContainsCategoryName(t *testing.T) {
	list := []Category{{ID: "1", Name: "Home"}}
	assert.True(t, ContainsCategoryName(list, "Home"))
	assert.False(t, ContainsCategoryName(list, "home"))
	assert.False(t, ContainsCategoryName(nil, "Home"))
}
