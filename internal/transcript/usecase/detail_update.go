package usecase

import (
	"context"
	"errors"
	"strings"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/transcript"
	repo "meeting-task-pipeline/internal/transcript/repository"
)

// Detail retrieves a transcript. Returns ErrTranscriptNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, id string) (transcript.DetailOutput, error) {
	t, err := uc.GetTranscript(ctx, id)
	if err != nil {
		return transcript.DetailOutput{}, err
	}
	return transcript.DetailOutput{Transcript: t}, nil
}

// GetTranscript is the lookup used by the extraction pipeline.
func (uc *implUseCase) GetTranscript(ctx context.Context, id string) (model.Transcript, error) {
	t, err := uc.repo.GetTranscript(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Transcript{}, transcript.ErrTranscriptNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTranscript: %v", err)
		return model.Transcript{}, err
	}
	return t, nil
}

// UpdateText applies the single correction allowed before extraction.
func (uc *implUseCase) UpdateText(ctx context.Context, input transcript.UpdateTextInput) (transcript.UpdateTextOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return transcript.UpdateTextOutput{}, transcript.ErrEmptyTranscript
	}

	t, err := uc.repo.CorrectText(ctx, repo.CorrectTextOptions{ID: input.ID, Text: text})
	switch {
	case err == nil:
		return transcript.UpdateTextOutput{Transcript: t}, nil
	case errors.Is(err, repo.ErrNotFound):
		return transcript.UpdateTextOutput{}, transcript.ErrTranscriptNotFound
	case errors.Is(err, repo.ErrConditionFailed):
		return transcript.UpdateTextOutput{}, uc.correctionConflict(ctx, input.ID)
	default:
		uc.l.Errorf(ctx, "uc.UpdateText CorrectText: %v", err)
		return transcript.UpdateTextOutput{}, err
	}
}

// MarkExtracted records that the pipeline ran, which closes the correction window.
func (uc *implUseCase) MarkExtracted(ctx context.Context, id string) error {
	err := uc.repo.MarkExtracted(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return transcript.ErrTranscriptNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkExtracted: %v", err)
	}
	return err
}

// correctionConflict tells apart the two reasons a correction is refused.
func (uc *implUseCase) correctionConflict(ctx context.Context, id string) error {
	t, err := uc.repo.GetTranscript(ctx, id)
	if err == nil && t.Extracted {
		return transcript.ErrAlreadyExtracted
	}
	return transcript.ErrAlreadyCorrected
}
