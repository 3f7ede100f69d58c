package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

const (
	MaxNameLength     = 120
	MaxEmailLength    = 254
	MaxPasswordLength = 256
)

type UserService struct {
	Store store.Store
}

// NormalizeEmail trims and lower-cases an email so lookups and the unique
// constraint agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. The password is hashed before it reaches the
// store and a duplicate email is reported as a validation failure.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	switch {
	case name == "":
		return domain.User{}, invalid("name", "is required")
	case len(name) > MaxNameLength:
		return domain.User{}, invalid("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	case email == "":
		return domain.User{}, invalid("email", "is required")
	case len(email) > MaxEmailLength || !strings.Contains(email, "@"):
		return domain.User{}, invalid("email", "must be a valid email address")
	case password == "":
		return domain.User{}, invalid("password", "is required")
	case len(password) > MaxPasswordLength:
		return domain.User{}, invalid("password", fmt.Sprintf("must be at most %d characters", MaxPasswordLength))
	case cryptox.CurrentAlgorithm() == cryptox.AlgorithmBcrypt && len(password) > cryptox.BcryptMaxPasswordBytes:
		return domain.User{}, invalid("password", fmt.Sprintf("must be at most %d bytes", cryptox.BcryptMaxPasswordBytes))
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return domain.User{}, invalid("password", "is too long")
		}
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, invalid("email", "is already registered")
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// DeleteUser removes the user and every task they own in one transaction.
// Tokens issued to the user stop resolving once this returns.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	var removed int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Tasks().DeleteTasksByOwner(ctx, userID)
		if err != nil {
			return err
		}
		removed = n
		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	slogx.FromContext(ctx).Info("user deleted", "user_id", userID, "tasks_removed", removed)
	return nil
}
