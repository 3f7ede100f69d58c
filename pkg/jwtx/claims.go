package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime given to tokens when the service does not
// configure one. A TTL of zero means the token carries no exp claim at all
// and lives as long as the signing secret does.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the bearer-token claims. The token only has to resolve back to
// a user, so the user id is the single custom field.
type Claims struct {
	// UserID of the authenticated user.
	UserID int64 `json:"id"`

	jwt.RegisteredClaims
}

// NewClaims builds claims for userID issued at now. When ttl is zero or
// negative the exp claim is omitted.
func NewClaims(userID int64, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// ValidateSubject ensures the token names a usable user id.
func (c *Claims) ValidateSubject() error {
	if c.UserID <= 0 {
		return ErrInvalidClaim
	}
	return nil
}

// ValidateExpiry ensures the token hasn’t expired (exp) and isn’t before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
