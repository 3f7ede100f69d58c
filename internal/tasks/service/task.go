package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
)

const MaxTitleLength = 255

// TaskScope pairs a task id with the caller asking for it. Every read and
// write of a single task goes through one, so no code path can reach a task
// without naming its owner.
type TaskScope struct {
	OwnerID int64
	TaskID  int64
}

// NewTaskScope builds a scope from the authenticated owner and a raw path
// id. Ids that are not positive integers cannot exist and report
// ErrTaskNotFound.
func NewTaskScope(ownerID int64, rawID string) (TaskScope, error) {
	if ownerID <= 0 {
		return TaskScope{}, ErrUnauthorized
	}
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return TaskScope{}, ErrTaskNotFound
	}
	return TaskScope{OwnerID: ownerID, TaskID: id}, nil
}

type TaskService struct {
	Store store.Store
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return "", invalid("title", "is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return "", invalid("title", fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	}
	return title, nil
}

// List returns the owner's tasks. It never returns nil.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasks(ctx, ownerID)
}

// Create stores a task owned by ownerID. Any owner supplied by the client
// is ignored by construction.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title string, done bool) (domain.Task, error) {
	if ownerID <= 0 {
		return domain.Task{}, ErrUnauthorized
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return domain.Task{}, err
	}
	return s.Store.Tasks().CreateTask(ctx, domain.Task{
		Title:   title,
		Done:    done,
		OwnerID: ownerID,
	})
}

func (s *TaskService) Get(ctx context.Context, scope TaskScope) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTask(ctx, scope.OwnerID, scope.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return t, nil
}

// Update changes only the title and done flag.
func (s *TaskService) Update(ctx context.Context, scope TaskScope, patch domain.TaskPatch) error {
	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			return err
		}
		patch.Title = &title
	}

	n, err := s.Store.Tasks().UpdateTask(ctx, scope.OwnerID, scope.TaskID, patch)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, scope TaskScope) error {
	n, err := s.Store.Tasks().DeleteTask(ctx, scope.OwnerID, scope.TaskID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
