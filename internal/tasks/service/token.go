package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

// TokenService exchanges credentials for signed tokens and resolves tokens
// back to users. Signer and Verifier share one secret that is set at
// startup and never changes afterwards.
type TokenService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	// TTL bounds token lifetime. Zero issues tokens without an exp claim.
	TTL time.Duration

	// Now is overridable for tests.
	Now func() time.Time
}

// fallbackDecoyHash is a well-formed argon2id hash with a zeroed salt and
// digest. Verifying against it costs a full argon2id derivation.
const fallbackDecoyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

var (
	decoyOnce sync.Once
	decoyHash string
)

// decoy returns a hash to verify against when the email is unknown so the
// response time does not reveal whether an account exists.
func decoy() string {
	decoyOnce.Do(func() {
		decoyHash = makeDecoy(cryptox.HashPassword)
	})
	return decoyHash
}

func makeDecoy(hash func(string) (string, error)) string {
	h, err := hash("decoy-password-never-matches")
	if err != nil || h == "" {
		slog.Default().Error("decoy hash failed, using fallback", "error", err)
		return fallbackDecoyHash
	}
	return h
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Exchange verifies email and password and returns a signed token. Unknown
// emails and wrong passwords fail identically with ErrUnauthorized.
func (s *TokenService) Exchange(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrUnauthorized
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.CheckPassword(decoy(), password)
			l.Warn("token exchange failed", "reason", "unknown email")
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		l.Warn("token exchange failed", "reason", "password mismatch", "user_id", user.ID)
		return "", ErrUnauthorized
	}

	return s.Issue(user)
}

// Issue signs a token naming user. It performs no credential checks.
func (s *TokenService) Issue(user domain.User) (string, error) {
	if user.ID <= 0 {
		return "", ErrUnauthorized
	}
	token, err := s.Signer.Sign(jwtx.NewClaims(user.ID, s.TTL, s.now()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Authenticate verifies token and loads the user it names. Any token or
// lookup miss wraps ErrUnauthorized; store failures are returned as is.
func (s *TokenService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: user %d no longer exists", ErrUnauthorized, claims.UserID)
		}
		return domain.User{}, err
	}
	return user, nil
}
