package usecase

import (
	"context"

	"meeting-task-pipeline/internal/transcript"
	"meeting-task-pipeline/internal/transcript/repository"
	"meeting-task-pipeline/pkg/deepgram"
	"meeting-task-pipeline/pkg/log"
)

// Completer is the text-completion capability used for summaries.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options toggles optional behavior of the use case.
type Options struct {
	SummaryEnabled bool
}

// implUseCase is the private implementation of transcript.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	llm         Completer
	transcriber deepgram.ITranscriber
	opts        Options
}

// New creates a new transcript UseCase. transcriber may be nil, in which case
// Upload always fails with ErrTranscription.
func New(l log.Logger, repo repository.Repository, llm Completer, transcriber deepgram.ITranscriber, opts Options) transcript.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		llm:         llm,
		transcriber: transcriber,
		opts:        opts,
	}
}
