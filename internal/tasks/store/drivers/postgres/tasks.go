package postgres

import (
	"context"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, title, done, owner_id, created_at, updated_at`

type tasksRepo struct {
	q querier
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Done, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *tasksRepo) ListTasks(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Task{}
	}
	return out, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, ownerID, id int64) (domain.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	return scanTask(r.q.QueryRow(ctx,
		`INSERT INTO tasks (title, done, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+taskColumns,
		t.Title, t.Done, t.OwnerID,
	))
}

// UpdateTask leaves a column alone when its argument is NULL.
func (r *tasksRepo) UpdateTask(ctx context.Context, ownerID, id int64, patch domain.TaskPatch) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE tasks
		    SET title      = COALESCE($3, title),
		        done       = COALESCE($4, done),
		        updated_at = now()
		  WHERE id = $1 AND owner_id = $2`,
		id, ownerID, patch.Title, patch.Done,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, ownerID, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *tasksRepo) DeleteTasksByOwner(ctx context.Context, ownerID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *tasksRepo) CountTasks(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}
