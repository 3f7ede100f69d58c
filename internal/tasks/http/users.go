package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// UsersHandler handles account registration and the caller's own account.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleRegister handles POST /users
//
//	@Summary		Register User
//	@Description	Creates an account. The email must not already be registered. The password hash is never returned.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"name, email, password"
//	@Success		200		{object}	tasksdk.User			"id, name, email"
//	@Failure		412		{object}	tasksdk.APIError		"error, error_description, fields"
//	@Failure		500		{object}	tasksdk.APIError		"error, error_description"
//	@Router			/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleGet handles GET /user
//
//	@Summary		Current User
//	@Description	Returns the account the presented token was issued to.
//	@Tags			Users
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	tasksdk.User		"id, name, email"
//	@Failure		401	{object}	tasksdk.APIError	"error, error_description"
//	@Router			/user [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), p.ID)
	if err != nil {
		// The user was removed between authentication and now.
		if errors.Is(err, store.ErrNotFound) {
			err = service.ErrUnauthorized
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}

// HandleDelete handles DELETE /user
//
//	@Summary		Delete Current User
//	@Description	Deletes the caller's account and every task they own. Existing tokens stop working.
//	@Tags			Users
//	@Security		TokenAuth
//	@Success		204	"No Content"
//	@Failure		401	{object}	tasksdk.APIError	"error, error_description"
//	@Failure		500	{object}	tasksdk.APIError	"error, error_description"
//	@Router			/user [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), p.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
