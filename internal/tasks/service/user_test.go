package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.users.Register(ctx, "  John Connor ", " John@Connor.NET ", "123456")
	require.NoError(t, err)
	require.Positive(t, u.ID)
	require.Equal(t, "John Connor", u.Name)
	require.Equal(t, "john@connor.net", u.Email)
	require.NotEqual(t, "123456", u.PasswordHash)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	stored, err := f.users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.PasswordHash, stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "taken@example.com")

	tests := []struct {
		name, userName, email, password string
		field                           string
	}{
		{"missing name", "  ", "a@example.com", "pw", "name"},
		{"missing email", "A", "", "pw", "email"},
		{"bad email", "A", "not-an-email", "pw", "email"},
		{"missing password", "A", "a@example.com", "", "password"},
		{"duplicate email", "A", "TAKEN@example.com", "pw", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Register(ctx, tt.userName, tt.email, tt.password)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tt.field)
		})
	}

	n, err := f.store.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestRegisterBcryptPasswordLimit(t *testing.T) {
	cryptox.SetAlgorithm(cryptox.AlgorithmBcrypt)
	t.Cleanup(func() { cryptox.SetAlgorithm(cryptox.AlgorithmArgon2id) })

	ctx := context.Background()
	f := newFixture(t)

	_, err := f.users.Register(ctx, "Long", "long@example.com", strings.Repeat("a", 100))
	require.True(t, IsValidation(err))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "password")

	u, err := f.users.Register(ctx, "Edge", "edge@example.com", strings.Repeat("a", cryptox.BcryptMaxPasswordBytes))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$2a$"))
}

func TestDeleteUserRemovesTasks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "a@example.com")
	other := f.register(t, "b@example.com")

	_, err := f.tasks.Create(ctx, u.ID, "one", false)
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, other.ID, "two", false)
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, u.ID))

	_, err = f.users.GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	remaining, err := f.store.Tasks().CountTasks(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), remaining)

	require.ErrorIs(t, f.users.DeleteUser(ctx, u.ID), ErrUnauthorized)
}

func TestDeleteUserInvalidatesToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "a@example.com")

	token, err := f.tokens.Issue(domain.User{ID: u.ID})
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, u.ID))

	_, err = f.tokens.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrUnauthorized)
}
