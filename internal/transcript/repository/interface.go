package repository

import (
	"context"

	"meeting-task-pipeline/internal/model"
)

// Repository is the data store for transcripts.
// Lookups by an unknown id return ErrNotFound.
type Repository interface {
	CreateTranscript(ctx context.Context, opt CreateTranscriptOptions) (model.Transcript, error)
	GetTranscript(ctx context.Context, id string) (model.Transcript, error)

	// CorrectText replaces the text only while the transcript is neither
	// corrected nor extracted; otherwise it returns ErrConditionFailed.
	CorrectText(ctx context.Context, opt CorrectTextOptions) (model.Transcript, error)

	MarkExtracted(ctx context.Context, id string) error
}
