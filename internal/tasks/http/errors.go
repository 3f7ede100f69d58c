package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/aussiebroadwan/tasks/pkg/validx"
)

// writeServiceError maps a service error onto its HTTP response. Anything
// not recognised is logged and reported as a 500 without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		tasksdk.NewValidationError(verr.Message, verr.Fields).WriteError(w)
	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.ErrTaskNotFound.WriteError(w)
	case errors.Is(err, service.ErrUnauthorized):
		tasksdk.ErrUnauthorized.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		tasksdk.ErrServerError.WriteError(w)
	}
}

// normalizer is implemented by request bodies that clean up their fields
// before validation.
type normalizer interface {
	Normalize()
}

// decodeAndValidate reads the JSON body into v, normalizes it and runs its
// validate tags. Bodies that are missing, malformed or invalid produce a 412
// and false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		tasksdk.NewValidationError(err.Error(), nil).WriteError(w)
		return false
	}

	if n, ok := v.(normalizer); ok {
		n.Normalize()
	}

	if err := validx.Struct(v); err != nil {
		var fields validx.Errors
		if errors.As(err, &fields) {
			tasksdk.NewValidationError("validation failed", fields).WriteError(w)
			return false
		}
		slogx.FromContext(r.Context()).Error("validate request", "error", err)
		tasksdk.ErrServerError.WriteError(w)
		return false
	}

	return true
}

// principal returns the authenticated caller. Routes that call it are always
// behind the authn middleware, so a missing principal is answered with 401.
func principal(w http.ResponseWriter, r *http.Request) (httpx.Principal, bool) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		tasksdk.ErrUnauthorized.WriteError(w)
	}
	return p, ok
}
