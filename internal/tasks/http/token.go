package http

import (
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// TokenHandler exchanges an email and password for a signed token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles POST /token
//
//	@Summary		Issue Token
//	@Description	Exchanges credentials for a signed token. Unknown emails and wrong passwords get the same response.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TokenRequest	true	"email, password"
//	@Success		200		{object}	tasksdk.TokenResponse	"token"
//	@Failure		401		{object}	tasksdk.APIError		"error, error_description"
//	@Failure		500		{object}	tasksdk.APIError		"error, error_description"
//	@Router			/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// An unreadable body is treated like empty credentials.
	var req tasksdk.TokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		req = tasksdk.TokenRequest{}
	}

	token, err := h.TokenService.Exchange(r.Context(), req.Email, req.Password)
	if err != nil {
		if service.IsUnauthorized(err) {
			tasksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		slogx.FromContext(r.Context()).Error("token exchange failed", "error", err)
		tasksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TokenResponse{Token: token})
}
