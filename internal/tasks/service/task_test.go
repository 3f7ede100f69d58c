package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestNewTaskScope(t *testing.T) {
	scope, err := NewTaskScope(3, "42")
	require.NoError(t, err)
	require.Equal(t, TaskScope{OwnerID: 3, TaskID: 42}, scope)

	for _, raw := range []string{"", "abc", "0", "-1", "1.5", "99999999999999999999"} {
		_, err := NewTaskScope(3, raw)
		require.ErrorIs(t, err, ErrTaskNotFound, raw)
	}

	_, err = NewTaskScope(0, "1")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "a@example.com")

	task, err := f.tasks.Create(ctx, owner.ID, "  Estudar ", false)
	require.NoError(t, err)
	require.Equal(t, "Estudar", task.Title)
	require.Equal(t, owner.ID, task.OwnerID)
	require.False(t, task.Done)

	scope := TaskScope{OwnerID: owner.ID, TaskID: task.ID}

	done := true
	title := "Estudar Go"
	require.NoError(t, f.tasks.Update(ctx, scope, domain.TaskPatch{Title: &title, Done: &done}))

	got, err := f.tasks.Get(ctx, scope)
	require.NoError(t, err)
	require.Equal(t, "Estudar Go", got.Title)
	require.True(t, got.Done)

	list, err := f.tasks.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.tasks.Delete(ctx, scope))
	require.ErrorIs(t, f.tasks.Delete(ctx, scope), ErrTaskNotFound)

	_, err = f.tasks.Get(ctx, scope)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "a@example.com")

	_, err := f.tasks.Create(ctx, owner.ID, "   ", false)
	require.True(t, IsValidation(err))

	_, err = f.tasks.Create(ctx, owner.ID, strings.Repeat("x", MaxTitleLength+1), false)
	require.True(t, IsValidation(err))

	// Length is counted in characters, not bytes.
	wide, err := f.tasks.Create(ctx, owner.ID, strings.Repeat("ä", 200), false)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("ä", 200), wide.Title)

	_, err = f.tasks.Create(ctx, owner.ID, strings.Repeat("ä", MaxTitleLength+1), false)
	require.True(t, IsValidation(err))

	task, err := f.tasks.Create(ctx, owner.ID, "ok", false)
	require.NoError(t, err)

	blank := ""
	err = f.tasks.Update(ctx, TaskScope{OwnerID: owner.ID, TaskID: task.ID}, domain.TaskPatch{Title: &blank})
	require.True(t, IsValidation(err))
}

func TestOtherOwnersTasksLookAbsent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice@example.com")
	bob := f.register(t, "bob@example.com")

	task, err := f.tasks.Create(ctx, alice.ID, "secret", false)
	require.NoError(t, err)

	foreign := TaskScope{OwnerID: bob.ID, TaskID: task.ID}
	missing := TaskScope{OwnerID: bob.ID, TaskID: task.ID + 100}

	for _, scope := range []TaskScope{foreign, missing} {
		_, err := f.tasks.Get(ctx, scope)
		require.ErrorIs(t, err, ErrTaskNotFound)

		done := true
		require.ErrorIs(t, f.tasks.Update(ctx, scope, domain.TaskPatch{Done: &done}), ErrTaskNotFound)
		require.ErrorIs(t, f.tasks.Delete(ctx, scope), ErrTaskNotFound)
	}

	got, err := f.tasks.Get(ctx, TaskScope{OwnerID: alice.ID, TaskID: task.ID})
	require.NoError(t, err)
	require.False(t, got.Done)
	require.Equal(t, "secret", got.Title)

	bobs, err := f.tasks.List(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, bobs)
}
