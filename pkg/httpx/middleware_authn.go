package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

// DefaultAuthScheme is the Authorization scheme clients send tokens under.
const DefaultAuthScheme = "JWT"

// Authenticator resolves a raw bearer token to the caller it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, token string) (Principal, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// AuthnMiddleware rejects requests that do not carry a valid token under
// scheme and attaches the resolved Principal to the request context.
//
// Every rejection produces the same response so callers cannot tell a
// missing header from a forged token or a deleted user. The reason is only
// logged. When isUnauthorized is set and reports false for an authenticator
// error, the request fails with 500 instead.
func AuthnMiddleware(scheme string, a Authenticator, isUnauthorized func(error) bool) Middleware {
	if scheme == "" {
		scheme = DefaultAuthScheme
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := ExtractToken(r.Header.Get("Authorization"), scheme)
			if !ok {
				log.Warn("authentication failed", "reason", "missing or malformed authorization header")
				WriteUnauthorized(w, scheme)
				return
			}

			p, err := a.Authenticate(ctx, raw)
			if err != nil {
				if isUnauthorized != nil && !isUnauthorized(err) {
					log.Error("authentication lookup failed", "err", err)
					WriteError(w, http.StatusInternalServerError, ErrorCodeServerError, "internal server error")
					return
				}
				log.Warn("authentication failed", "err", err)
				WriteUnauthorized(w, scheme)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.WithUserID(ctx, p.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken pulls the token out of an Authorization header value of the
// form "<scheme> <token>". The scheme is matched case-insensitively.
func ExtractToken(header, scheme string) (string, bool) {
	prefix, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(prefix, scheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// WriteUnauthorized writes the uniform 401 response with a challenge for scheme.
func WriteUnauthorized(w http.ResponseWriter, scheme string) {
	w.Header().Set("WWW-Authenticate", scheme+` error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "authentication required")
}
