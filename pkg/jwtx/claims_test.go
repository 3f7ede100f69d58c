package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	t.Run("with ttl", func(t *testing.T) {
		c := jwtx.NewClaims(7, time.Hour, now)
		require.Equal(t, int64(7), c.UserID)
		require.Equal(t, now, c.IssuedAt.Time)
		require.NotNil(t, c.ExpiresAt)
		require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	})

	t.Run("zero ttl omits exp", func(t *testing.T) {
		c := jwtx.NewClaims(7, 0, now)
		require.Nil(t, c.ExpiresAt)
	})
}

func TestValidateSubject(t *testing.T) {
	valid := jwtx.Claims{UserID: 1}
	require.NoError(t, valid.ValidateSubject())

	for _, id := range []int64{0, -5} {
		c := jwtx.Claims{UserID: id}
		require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrInvalidClaim)
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.NoError(t, claims.ValidateExpiry())
	})
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid with leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiryWithLeeway(30*time.Second))
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiryWithLeeway(30*time.Second), jwtx.ErrExpired)
	})
}
