package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names a supported password hashing scheme.
type Algorithm string

const (
	// AlgorithmArgon2id produces PHC-format argon2id hashes mixed with the pepper.
	AlgorithmArgon2id Algorithm = "argon2id"

	// AlgorithmBcrypt produces standard bcrypt hashes. Bcrypt hashes are not
	// peppered so hashes created by other bcrypt tooling keep verifying.
	AlgorithmBcrypt Algorithm = "bcrypt"
)

const (
	// BcryptCost is the work factor used when hashing with AlgorithmBcrypt.
	BcryptCost = 10

	// BcryptMaxPasswordBytes is the longest input bcrypt accepts.
	BcryptMaxPasswordBytes = 72
)

var (
	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrUnsupportedHash is returned for hashes in a scheme we do not know.
	ErrUnsupportedHash = errors.New("invalid hash format: unsupported scheme")

	// ErrPasswordTooLong is returned when the configured algorithm cannot
	// hash a password of the given length.
	ErrPasswordTooLong = errors.New("password too long for the configured algorithm")

	algoMu    sync.RWMutex
	algorithm = AlgorithmArgon2id
)

// ParseAlgorithm maps a configuration string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AlgorithmArgon2id:
		return AlgorithmArgon2id, nil
	case AlgorithmBcrypt:
		return AlgorithmBcrypt, nil
	default:
		return "", fmt.Errorf("unsupported password algorithm %q (use argon2id or bcrypt)", s)
	}
}

// SetAlgorithm selects the algorithm HashPassword uses for new hashes.
// Verification always follows the scheme encoded in the stored hash.
func SetAlgorithm(a Algorithm) {
	algoMu.Lock()
	defer algoMu.Unlock()
	algorithm = a
}

// CurrentAlgorithm reports the algorithm HashPassword uses for new hashes.
func CurrentAlgorithm() Algorithm {
	algoMu.RLock()
	defer algoMu.RUnlock()
	return algorithm
}

// HashPassword derives a salted one-way hash of password using the
// configured algorithm.
func HashPassword(password string) (string, error) {
	if CurrentAlgorithm() == AlgorithmBcrypt {
		if len(password) > BcryptMaxPasswordBytes {
			return "", ErrPasswordTooLong
		}
		b, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return hashArgon2id(password)
}

// CheckPassword reports whether candidate matches encodedHash. Malformed
// or unknown hashes are a mismatch, never an error.
func CheckPassword(encodedHash, candidate string) bool {
	return VerifyPassword(candidate, encodedHash) == nil
}

// VerifyPassword compares a plaintext password against a stored hash and
// returns the reason for a mismatch.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(password, encodedHash)
	case isBcrypt(encodedHash):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	default:
		return ErrUnsupportedHash
	}
}

func isBcrypt(h string) bool {
	return strings.HasPrefix(h, "$2a$") || strings.HasPrefix(h, "$2b$") || strings.HasPrefix(h, "$2y$")
}

func hashArgon2id(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyArgon2id(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}
	if mem == 0 || iters == 0 || par == 0 {
		return errors.New("invalid hash format: zero parameter")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(expected) == 0 {
		return errors.New("invalid hash format: empty hash")
	}

	computed := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - bounded by the decoded hash
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
