package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

type scopeKey struct{}

// RequireTaskScope resolves the {id} path value against the authenticated
// caller. Handlers behind it only ever see a scope bound to the caller, and
// ids that cannot name a task stop here with 404.
func RequireTaskScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		scope, err := service.NewTaskScope(p.ID, r.PathValue("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), scopeKey{}, scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func taskScope(ctx context.Context) (service.TaskScope, bool) {
	s, ok := ctx.Value(scopeKey{}).(service.TaskScope)
	return s, ok
}

// TasksHandler handles the caller's task list.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList handles GET /tasks
//
//	@Summary		List Tasks
//	@Description	Returns every task owned by the caller, oldest first. Other users' tasks are never included.
//	@Tags			Tasks
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{array}		tasksdk.Task
//	@Failure		401	{object}	tasksdk.APIError	"error, error_description"
//	@Failure		500	{object}	tasksdk.APIError	"error, error_description"
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.List(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTasks(tasks))
}

// HandleCreate handles POST /tasks
//
//	@Summary		Create Task
//	@Description	Creates a task owned by the caller. Any owner in the body is ignored.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"title, done"
//	@Success		200		{object}	tasksdk.Task
//	@Failure		401		{object}	tasksdk.APIError	"error, error_description"
//	@Failure		412		{object}	tasksdk.APIError	"error, error_description, fields"
//	@Failure		500		{object}	tasksdk.APIError	"error, error_description"
//	@Router			/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req tasksdk.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.TaskService.Create(r.Context(), p.ID, req.Title, req.Done)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// HandleGet handles GET /tasks/{id}
//
//	@Summary		Get Task
//	@Description	Returns one of the caller's tasks. Tasks owned by someone else are reported as not found.
//	@Tags			Tasks
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id	path		int	true	"Task id"
//	@Success		200	{object}	tasksdk.Task
//	@Failure		401	{object}	tasksdk.APIError	"error, error_description"
//	@Failure		404	{object}	tasksdk.APIError	"error, error_description"
//	@Router			/tasks/{id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	scope, ok := taskScope(r.Context())
	if !ok {
		tasksdk.ErrTaskNotFound.WriteError(w)
		return
	}

	task, err := h.TaskService.Get(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// HandleUpdate handles PUT /tasks/{id}
//
//	@Summary		Update Task
//	@Description	Changes the title and/or done flag of one of the caller's tasks. Other fields in the body are ignored.
//	@Tags			Tasks
//	@Accept			json
//	@Security		TokenAuth
//	@Param			id		path	int							true	"Task id"
//	@Param			request	body	tasksdk.UpdateTaskRequest	true	"title, done"
//	@Success		204		"No Content"
//	@Failure		401		{object}	tasksdk.APIError	"error, error_description"
//	@Failure		404		{object}	tasksdk.APIError	"error, error_description"
//	@Failure		412		{object}	tasksdk.APIError	"error, error_description, fields"
//	@Router			/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	scope, ok := taskScope(r.Context())
	if !ok {
		tasksdk.ErrTaskNotFound.WriteError(w)
		return
	}

	var req tasksdk.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := domain.TaskPatch{Title: req.Title, Done: req.Done}
	if err := h.TaskService.Update(r.Context(), scope, patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /tasks/{id}
//
//	@Summary		Delete Task
//	@Description	Deletes one of the caller's tasks.
//	@Tags			Tasks
//	@Security		TokenAuth
//	@Param			id	path	int	true	"Task id"
//	@Success		204	"No Content"
//	@Failure		401	{object}	tasksdk.APIError	"error, error_description"
//	@Failure		404	{object}	tasksdk.APIError	"error, error_description"
//	@Router			/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	scope, ok := taskScope(r.Context())
	if !ok {
		tasksdk.ErrTaskNotFound.WriteError(w)
		return
	}

	if err := h.TaskService.Delete(r.Context(), scope); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
