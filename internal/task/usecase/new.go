package usecase

import (
	"context"

	"meeting-task-pipeline/internal/extraction"
	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/scheduling"
	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/internal/task/repository"
	"meeting-task-pipeline/pkg/gcalendar"
	pkgLog "meeting-task-pipeline/pkg/log"
)

const defaultConcurrency = 4

// TranscriptSource is the part of the transcript domain the pipeline reads from.
type TranscriptSource interface {
	GetTranscript(ctx context.Context, id string) (model.Transcript, error)
	MarkExtracted(ctx context.Context, id string) error
}

// CalendarPublisher mirrors stored events to an external calendar.
type CalendarPublisher interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Options tunes the pipeline.
type Options struct {
	Concurrency int    // parallel drafts per run, defaults to 4
	CalendarID  string // calendar used by the mirror
	Timezone    string
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	transcripts TranscriptSource
	extractor   extraction.Extractor
	policy      scheduling.Policy
	calendar    CalendarPublisher
	metrics     *Metrics
	opts        Options
}

// New creates a new task UseCase. calendar may be nil to disable the mirror.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	transcripts TranscriptSource,
	extractor extraction.Extractor,
	policy scheduling.Policy,
	calendar CalendarPublisher,
	opts Options,
) task.UseCase {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		transcripts: transcripts,
		extractor:   extractor,
		policy:      policy,
		calendar:    calendar,
		metrics:     NewMetrics(),
		opts:        opts,
	}
}
