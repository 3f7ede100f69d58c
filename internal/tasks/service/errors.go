package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized covers every credential or token failure. Callers
	// never learn which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTaskNotFound is returned for tasks that do not exist and for tasks
	// owned by someone else alike.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports rejected input. Fields maps a JSON field name to
// the reason it was rejected.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{
		Message: "validation failed",
		Fields:  map[string]string{field: reason},
	}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsUnauthorized reports whether err is (or wraps) ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
