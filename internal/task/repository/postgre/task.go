package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meeting-task-pipeline/internal/model"
	repo "meeting-task-pipeline/internal/task/repository"
)

const taskColumns = `id, transcript_id, title, description, due_date, assigned_to, priority, can_schedule, position, event_id, created_at`

// CreateTask inserts a task row. due_date is stored exactly as extracted.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, transcript_id, title, description, due_date, assigned_to, priority, can_schedule, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + taskColumns

	d := opt.Draft
	t, err := scanTask(r.pool.QueryRow(ctx, query,
		uuid.NewString(), opt.TranscriptID, d.Title, d.Description, d.DueDate, d.AssignedTo, string(d.Priority), d.CanSchedule, opt.Position,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask fetches a task by id.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Task{}, repo.ErrNotFound
	}

	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the tasks of a transcript ordered by position.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if _, err := uuid.Parse(opt.TranscriptID); err != nil {
		return []model.Task{}, nil
	}

	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE transcript_id = $1 ORDER BY position, created_at, id`

	rows, err := r.pool.Query(ctx, query, opt.TranscriptID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// AttachEvent sets event_id only while it is NULL, so concurrent callers
// cannot overwrite each other's link.
func (r *implRepository) AttachEvent(ctx context.Context, opt repo.AttachEventOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.TaskID); err != nil {
		return model.Task{}, repo.ErrNotFound
	}

	const query = `
		UPDATE tasks SET event_id = $1
		WHERE id = $2 AND event_id IS NULL
		RETURNING ` + taskColumns

	t, err := scanTask(r.pool.QueryRow(ctx, query, opt.EventID, opt.TaskID))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetTask(ctx, opt.TaskID); getErr != nil {
			return model.Task{}, getErr
		}
		return model.Task{}, repo.ErrConditionFailed
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AttachEvent"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t        model.Task
		priority string
	)
	err := row.Scan(&t.ID, &t.TranscriptID, &t.Title, &t.Description, &t.DueDate, &t.AssignedTo,
		&priority, &t.CanSchedule, &t.Position, &t.EventID, &t.CreatedAt)
	t.Priority = model.ParsePriority(priority)
	return t, err
}
