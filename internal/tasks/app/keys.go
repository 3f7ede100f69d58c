package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
)

// InitTokenKeys builds the signer and verifier from one shared secret.
//
// The secret comes from TASKS_TOKEN_SECRET when set. Otherwise it is read
// from TASKS_TOKEN_SECRET_FILE, which is created with a random secret on
// first start so tokens survive restarts. Both halves get their own copy of
// the secret and nothing changes it afterwards.
func InitTokenKeys(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, *jwtx.HS256Verifier, error) {
	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		s, err := cryptox.LoadOrGenerateSecretFile(cfg.TokenSecretFile, jwtx.MinSecretLength)
		if err != nil {
			return nil, nil, fmt.Errorf("load token secret: %w", err)
		}
		secret = []byte(s)
		logger.Info("token secret loaded", "file", cfg.TokenSecretFile)
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("token verifier: %w", err)
	}

	return signer, verifier, nil
}
