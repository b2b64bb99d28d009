package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meeting-task-pipeline/internal/model"
	repo "meeting-task-pipeline/internal/transcript/repository"
)

const transcriptColumns = `id, file_path, text, summary, corrected, extracted, created_at, updated_at`

// CreateTranscript inserts a new transcript row and returns the created entity.
func (r *implRepository) CreateTranscript(ctx context.Context, opt repo.CreateTranscriptOptions) (model.Transcript, error) {
	const query = `
		INSERT INTO transcripts (id, file_path, text, summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + transcriptColumns

	t, err := scanTranscript(r.pool.QueryRow(ctx, query, uuid.NewString(), opt.FilePath, opt.Text, opt.Summary))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTranscript"), err)
		return model.Transcript{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTranscript fetches a transcript by id.
func (r *implRepository) GetTranscript(ctx context.Context, id string) (model.Transcript, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Transcript{}, repo.ErrNotFound
	}

	const query = `SELECT ` + transcriptColumns + ` FROM transcripts WHERE id = $1`

	t, err := scanTranscript(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Transcript{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTranscript"), err)
		return model.Transcript{}, repo.ErrFailedToGet
	}
	return t, nil
}

// CorrectText updates the text only while the row is neither corrected nor extracted.
func (r *implRepository) CorrectText(ctx context.Context, opt repo.CorrectTextOptions) (model.Transcript, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Transcript{}, repo.ErrNotFound
	}

	const query = `
		UPDATE transcripts
		SET text = $1, corrected = TRUE, updated_at = NOW()
		WHERE id = $2 AND corrected = FALSE AND extracted = FALSE
		RETURNING ` + transcriptColumns

	t, err := scanTranscript(r.pool.QueryRow(ctx, query, opt.Text, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the row is missing or the guard rejected the update.
		if _, getErr := r.GetTranscript(ctx, opt.ID); getErr != nil {
			return model.Transcript{}, getErr
		}
		return model.Transcript{}, repo.ErrConditionFailed
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CorrectText"), err)
		return model.Transcript{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// MarkExtracted flags the transcript as processed by the extraction pipeline.
func (r *implRepository) MarkExtracted(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repo.ErrNotFound
	}

	const query = `UPDATE transcripts SET extracted = TRUE, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkExtracted"), err)
		return repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func scanTranscript(row pgx.Row) (model.Transcript, error) {
	var t model.Transcript
	err := row.Scan(&t.ID, &t.FilePath, &t.Text, &t.Summary, &t.Corrected, &t.Extracted, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
