package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a Tx can hand
// out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during the credential exchange. The email must
	// already be normalised.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u and returns it with the assigned id and
	// timestamps. A duplicate email returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// DeleteUser removes the user. Owned tasks cascade per schema.
	DeleteUser(ctx context.Context, id int64) error

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

// Tasks never exposes a lookup by task id alone: every read and write is
// scoped to an owner.
type Tasks interface {
	// ListTasks returns the owner's tasks ordered by id.
	ListTasks(ctx context.Context, ownerID int64) ([]domain.Task, error)

	// GetTask returns ErrNotFound when the task is absent or owned by
	// someone else.
	GetTask(ctx context.Context, ownerID, id int64) (domain.Task, error)

	// CreateTask inserts t and returns it with the assigned id and timestamps.
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// UpdateTask applies patch and returns the number of rows matched.
	UpdateTask(ctx context.Context, ownerID, id int64, patch domain.TaskPatch) (int64, error)

	// DeleteTask returns the number of rows removed.
	DeleteTask(ctx context.Context, ownerID, id int64) (int64, error)

	// DeleteTasksByOwner removes all of the owner's tasks.
	DeleteTasksByOwner(ctx context.Context, ownerID int64) (int64, error)

	// CountTasks returns the number of tasks across all users.
	CountTasks(ctx context.Context) (int64, error)
}
