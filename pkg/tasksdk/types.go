package tasksdk

import (
	"strings"
	"time"
)

// ============================================================================
// Users
// ============================================================================

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=256"`
}

// Normalize trims surrounding whitespace from the name and email. The
// password is kept verbatim.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// User is the public view of an account. The password hash never leaves the
// service.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ============================================================================
// Tokens
// ============================================================================

// TokenRequest is the body of POST /token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed token returned by POST /token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ============================================================================
// Tasks
// ============================================================================

// Task is a single item on a user's list.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTaskRequest is the body of POST /tasks. The owner is always the
// caller, so there is no owner field.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Done  bool   `json:"done"`
}

// Normalize trims surrounding whitespace from the title.
func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Nil fields are left
// unchanged.
type UpdateTaskRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Done  *bool   `json:"done,omitempty"`
}

func (r *UpdateTaskRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}
