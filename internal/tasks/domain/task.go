package domain

import "time"

// Task belongs to exactly one user. OwnerID is set from the authenticated
// caller when the task is created and never changes.
type Task struct {
	ID        int64
	Title     string
	Done      bool
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskPatch lists the fields a caller may change. Nil means unchanged.
type TaskPatch struct {
	Title *string
	Done  *bool
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool { return p.Title == nil && p.Done == nil }
