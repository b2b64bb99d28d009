package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meeting-task-pipeline/internal/model"
	repo "meeting-task-pipeline/internal/task/repository"
)

const eventColumns = `id, title, description, start_time, end_time, assigned_to, priority, task_id, transcript_id, recurrence, created_at`

// CreateEvent inserts an event row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, title, description, start_time, end_time, assigned_to, priority, task_id, transcript_id, recurrence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + eventColumns

	d := opt.Draft
	var recurrence *string
	if d.Recurrence != nil {
		s := string(*d.Recurrence)
		recurrence = &s
	}

	e, err := scanEvent(r.pool.QueryRow(ctx, query,
		uuid.NewString(), d.Title, d.Description, d.StartTime, d.EndTime, d.AssignedTo, string(d.Priority),
		d.TaskID, d.TranscriptID, recurrence,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetEvent fetches an event by id.
func (r *implRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Event{}, repo.ErrNotFound
	}

	const query = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Event{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEventsByTranscript returns the events of a transcript in creation order.
func (r *implRepository) ListEventsByTranscript(ctx context.Context, transcriptID string) ([]model.Event, error) {
	if _, err := uuid.Parse(transcriptID); err != nil {
		return []model.Event{}, nil
	}

	const query = `SELECT ` + eventColumns + ` FROM events WHERE transcript_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, transcriptID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEventsByTranscript"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEventsByTranscript"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEventsByTranscript"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// DeleteEvent removes an event row.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repo.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var (
		e          model.Event
		priority   string
		recurrence *string
	)
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.AssignedTo,
		&priority, &e.TaskID, &e.TranscriptID, &recurrence, &e.CreatedAt)
	e.Priority = model.ParsePriority(priority)
	if recurrence != nil {
		if r, ok := model.ParseRecurrence(*recurrence); ok {
			e.Recurrence = &r
		}
	}
	return e, err
}
