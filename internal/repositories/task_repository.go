package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"taskapi/internal/apperrors"
	"taskapi/internal/models"
)

// TaskRepository is the single gateway to the backing store. Every
// mutation returns the affected row in the same round trip via
// RETURNING; there is no mutate-then-fetch window. Absence is an
// outcome, not an error: lookups and mutations on a missing id return
// (nil, nil).
type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAll(ctx context.Context, filter models.TaskFilter, limit, offset int) ([]models.Task, error)
	Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = "id, title, description, status, priority, created_at, updated_at"

func scanTask(row *sql.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Priority,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return apperrors.Storage("insert task", err)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Storage("select task", err)
	}
	return task, nil
}

// buildListQuery assembles the list statement from only the present
// filters: condition fragments are collected and joined with AND.
// Order is created_at ASC with id as tiebreak so pagination is stable.
func buildListQuery(filter models.TaskFilter, limit, offset int) (string, []interface{}) {
	query := `SELECT ` + taskColumns + ` FROM tasks`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argID))
		args = append(args, *filter.Priority)
		argID++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	return query, args
}

func (r *taskRepository) FindAll(ctx context.Context, filter models.TaskFilter, limit, offset int) ([]models.Task, error) {
	query, args := buildListQuery(filter, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage("select tasks", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, apperrors.Storage("scan task row", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate task rows", err)
	}
	return tasks, nil
}

// buildUpdateQuery assembles the SET list from only the supplied fields.
// updated_at is always refreshed. The caller guarantees upd is not empty.
func buildUpdateQuery(id string, upd models.TaskUpdate) (string, []interface{}) {
	sets := []string{}
	args := []interface{}{}
	argID := 1

	if upd.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argID))
		args = append(args, *upd.Title)
		argID++
	}
	if upd.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argID))
		args = append(args, *upd.Description)
		argID++
	}
	if upd.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argID))
		args = append(args, *upd.Status)
		argID++
	}
	if upd.Priority != nil {
		sets = append(sets, fmt.Sprintf("priority = $%d", argID))
		args = append(args, *upd.Priority)
		argID++
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), argID, taskColumns)
	args = append(args, id)

	return query, args
}

func (r *taskRepository) Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	query, args := buildUpdateQuery(id, upd)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Storage("update task", err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (*models.Task, error) {
	query := `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Storage("delete task", err)
	}
	return task, nil
}
