package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-task-pipeline/internal/transcript"
	repo "meeting-task-pipeline/internal/transcript/repository"
)

// Create stores a transcript. A failed summary never blocks creation.
func (uc *implUseCase) Create(ctx context.Context, input transcript.CreateInput) (transcript.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return transcript.CreateOutput{}, transcript.ErrEmptyTranscript
	}

	summary := ""
	if uc.opts.SummaryEnabled {
		summary = uc.summarize(ctx, text)
	}

	t, err := uc.repo.CreateTranscript(ctx, repo.CreateTranscriptOptions{
		FilePath: input.FilePath,
		Text:     text,
		Summary:  summary,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTranscript: %v", err)
		return transcript.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: transcript %s stored (text_length=%d summary=%t)", t.ID, len(t.Text), t.Summary != "")
	return transcript.CreateOutput{Transcript: t}, nil
}

// Upload transcribes the audio and stores the text.
func (uc *implUseCase) Upload(ctx context.Context, input transcript.UploadInput) (transcript.CreateOutput, error) {
	if input.Audio == nil {
		return transcript.CreateOutput{}, transcript.ErrNoFileUploaded
	}
	if uc.transcriber == nil {
		return transcript.CreateOutput{}, fmt.Errorf("%w: transcription is not configured", transcript.ErrTranscription)
	}

	text, err := uc.transcriber.Transcribe(ctx, input.Audio, input.MimeType)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upload Transcribe: %v", err)
		return transcript.CreateOutput{}, fmt.Errorf("%w: %v", transcript.ErrTranscription, err)
	}

	return uc.Create(ctx, transcript.CreateInput{Text: text, FilePath: input.FileName})
}
