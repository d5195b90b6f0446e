package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosuge/taskpocket/internal/domain"
)

func TestArchiveTask_Execute_Success(t *testing.T) {
	repo := &mockTaskRepository{
		active: []domain.Task{
			{ID: "a", Title: "A"},
			{ID: "b", Title: "B"},
			{ID: "c", Title: "C"},
		},
		archived: []domain.Task{{ID: "z", Title: "Z"}},
	}
	uc := NewArchiveTask(repo, nil)

	out, err := uc.Execute(context.Background(), ArchiveTaskInput{Index: 1})

	require.NoError(t, err)
	assert.True(t, out.Archived)
	assert.Equal(t, "b", out.Task.ID)

	// Active list shrinks, archive grows by the moved task.
	require.Len(t, repo.active, 2)
	assert.Equal(t, "a", repo.active[0].ID)
	assert.Equal(t, "c", repo.active[1].ID)
	require.Len(t, repo.archived, 2)
	assert.Equal(t, "z", repo.archived[0].ID)
	assert.Equal(t, "b", repo.archived[1].ID)

	// Both snapshots were written.
	assert.Equal(t, 1, repo.activeSaves)
	assert.Equal(t, 1, repo.archivedSaves)
}

func TestArchiveTask_Execute_OutOfRange(t *testing.T) {
	repo := &mockTaskRepository{
		active: []domain.Task{{ID: "a"}},
	}
	uc := NewArchiveTask(repo, nil)

	for _, index := range []int{-1, 1, 99} {
		out, err := uc.Execute(context.Background(), ArchiveTaskInput{Index: index})

		// A no-op: no error, no partial state change, no writes.
		require.NoError(t, err)
		assert.False(t, out.Archived)
	}

	assert.Len(t, repo.active, 1)
	assert.Empty(t, repo.archived)
	assert.Equal(t, 0, repo.activeSaves)
	assert.Equal(t, 0, repo.archivedSaves)
}
