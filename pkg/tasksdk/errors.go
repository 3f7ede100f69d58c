package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/tasks/pkg/httpx"
)

// APIError is the error body returned by the service. Handlers write it and
// the SDK decodes it, so both sides share one definition.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is one of the httpx.ErrorCode* values.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`

	// Fields holds per-field reasons on validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as the HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, httpx.ErrorBody{
		Code:        e.Code,
		Description: e.Description,
		Fields:      e.Fields,
	})
}

var (
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        httpx.ErrorCodeUnauthorized,
		Description: "authentication required",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        httpx.ErrorCodeUnauthorized,
		Description: "invalid credentials",
	}

	ErrTaskNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        httpx.ErrorCodeNotFound,
		Description: "task not found",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        httpx.ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewValidationError builds the 412 response for rejected input.
func NewValidationError(description string, fields map[string]string) *APIError {
	return &APIError{
		StatusCode:  http.StatusPreconditionFailed,
		Code:        httpx.ErrorCodeValidationFailed,
		Description: description,
		Fields:      fields,
	}
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsValidation reports whether err is a 412 from the service.
func IsValidation(err error) bool { return hasStatus(err, http.StatusPreconditionFailed) }

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// parseErrorResponse turns a non-2xx response into an *APIError, falling back
// to a generic one when the body is not the service's error shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        httpx.ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
