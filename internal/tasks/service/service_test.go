package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("service-test-secret-0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tasks-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixture struct {
	store  *sqlite.Store
	users  *UserService
	tokens *TokenService
	tasks  *TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, 0)
	require.NoError(t, err)

	return &fixture{
		store: st,
		users: &UserService{Store: st},
		tokens: &TokenService{
			Store:    st,
			Signer:   signer,
			Verifier: verifier,
			TTL:      jwtx.DefaultTokenTTL,
		},
		tasks: &TaskService{Store: st},
	}
}

func (f *fixture) register(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), "Test User", email, "123456")
	require.NoError(t, err)
	return u
}
