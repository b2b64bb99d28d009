package memory

import (
	"context"

	"github.com/google/uuid"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/transcript/repository"
)

func (r *implRepository) CreateTranscript(ctx context.Context, opt repository.CreateTranscriptOptions) (model.Transcript, error) {
	now := r.clock.Now()
	t := model.Transcript{
		ID:        uuid.NewString(),
		FilePath:  opt.FilePath,
		Text:      opt.Text,
		Summary:   opt.Summary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.transcripts[t.ID] = t
	r.mu.Unlock()

	return t, nil
}

func (r *implRepository) GetTranscript(ctx context.Context, id string) (model.Transcript, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transcripts[id]
	if !ok {
		return model.Transcript{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) CorrectText(ctx context.Context, opt repository.CorrectTextOptions) (model.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.transcripts[opt.ID]
	if !ok {
		return model.Transcript{}, repository.ErrNotFound
	}
	if t.Corrected || t.Extracted {
		return model.Transcript{}, repository.ErrConditionFailed
	}

	t.Text = opt.Text
	t.Corrected = true
	t.UpdatedAt = r.clock.Now()
	r.transcripts[t.ID] = t
	return t, nil
}

func (r *implRepository) MarkExtracted(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.transcripts[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Extracted = true
	t.UpdatedAt = r.clock.Now()
	r.transcripts[id] = t
	return nil
}
