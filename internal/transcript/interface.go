package transcript

import (
	"context"

	"meeting-task-pipeline/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create stores a transcript and, when enabled, a model-written summary.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Upload transcribes an audio file and stores the result via Create.
	Upload(ctx context.Context, input UploadInput) (CreateOutput, error)

	Detail(ctx context.Context, id string) (DetailOutput, error)

	// UpdateText applies the one-time correction allowed before extraction.
	UpdateText(ctx context.Context, input UpdateTextInput) (UpdateTextOutput, error)

	// GetTranscript and MarkExtracted serve the extraction pipeline.
	GetTranscript(ctx context.Context, id string) (model.Transcript, error)
	MarkExtracted(ctx context.Context, id string) error
}
