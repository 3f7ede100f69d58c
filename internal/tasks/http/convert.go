package http

import (
	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

func toUser(u domain.User) tasksdk.User {
	return tasksdk.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		OwnerID:   t.OwnerID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTasks(ts []domain.Task) []tasksdk.Task {
	out := make([]tasksdk.Task, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTask(t))
	}
	return out
}
