package tasksdk

import (
	"context"
	"net/http"
	"strconv"
)

// Session performs authenticated calls with a single token. Tokens are not
// refreshed; log in again once the token expires.
type Session struct {
	client *Client
	token  string
}

// Token returns the token the session authenticates with.
func (s *Session) Token() string { return s.token }

// ============================================================================
// User
// ============================================================================

// GetUser returns the account the token belongs to.
func (s *Session) GetUser(ctx context.Context) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/user", nil, s.token)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes the account and every task it owns. The session's
// token stops working afterwards.
func (s *Session) DeleteUser(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/user", nil, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Tasks
// ============================================================================

// ListTasks returns every task owned by the caller.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/tasks", nil, s.token)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := decodeJSON(resp, &tasks, http.StatusOK); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask adds a task owned by the caller.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/tasks", req, s.token)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches one of the caller's tasks.
func (s *Session) GetTask(ctx context.Context, id int64) (*Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, taskPath(id), nil, s.token)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask changes the title and/or done flag of one of the caller's tasks.
func (s *Session) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) error {
	resp, err := s.client.doRequest(ctx, http.MethodPut, taskPath(id), req, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteTask removes one of the caller's tasks.
func (s *Session) DeleteTask(ctx context.Context, id int64) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, taskPath(id), nil, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func taskPath(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10)
}
