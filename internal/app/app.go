package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"meeting-task-pipeline/config"
	"meeting-task-pipeline/internal/extraction"
	"meeting-task-pipeline/internal/scheduling"
	"meeting-task-pipeline/internal/task"
	taskRepo "meeting-task-pipeline/internal/task/repository"
	taskMemory "meeting-task-pipeline/internal/task/repository/memory"
	taskPostgre "meeting-task-pipeline/internal/task/repository/postgre"
	taskUC "meeting-task-pipeline/internal/task/usecase"
	"meeting-task-pipeline/internal/transcript"
	transcriptRepo "meeting-task-pipeline/internal/transcript/repository"
	transcriptMemory "meeting-task-pipeline/internal/transcript/repository/memory"
	transcriptPostgre "meeting-task-pipeline/internal/transcript/repository/postgre"
	transcriptUC "meeting-task-pipeline/internal/transcript/usecase"
	"meeting-task-pipeline/pkg/clock"
	"meeting-task-pipeline/pkg/datemath"
	"meeting-task-pipeline/pkg/deepgram"
	"meeting-task-pipeline/pkg/gcalendar"
	"meeting-task-pipeline/pkg/llmprovider"
	"meeting-task-pipeline/pkg/log"
	"meeting-task-pipeline/pkg/postgres"
)

// App is the wired set of use cases.
type App struct {
	Transcripts transcript.UseCase
	Tasks       task.UseCase

	pool *pgxpool.Pool
	l    log.Logger
}

// Options overrides parts of the wiring.
type Options struct {
	// LLM replaces the provider manager built from cfg.LLM.
	LLM extraction.Completer
	// ForceMemory ignores storage.driver and keeps everything in process.
	ForceMemory bool
	// DisableCalendar skips the Google Calendar mirror.
	DisableCalendar bool
}

// New builds repositories, collaborators and use cases from cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (*App, error) {
	a := &App{l: l}
	clk := clock.New()

	parser, err := datemath.NewParser(cfg.Pipeline.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Pipeline.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	// Extraction asks for JSON output; summaries stay plain text.
	llm, extractionLLM := opts.LLM, opts.LLM
	if llm == nil {
		manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
		if err != nil {
			return nil, fmt.Errorf("llm providers: %w", err)
		}
		llm, extractionLLM = manager, manager.JSON()
	}

	var (
		trRepo transcriptRepo.Repository
		tkRepo taskRepo.Repository
	)
	if opts.ForceMemory || cfg.Storage.Driver != "postgres" {
		trRepo = transcriptMemory.New(clk)
		tkRepo = taskMemory.New(clk)
		l.Info(ctx, "Storage: in-memory")
	} else {
		if cfg.Migrations.Enabled {
			if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN, cfg.Migrations.Path, l); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
		}, l)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		trRepo = transcriptPostgre.New(pool, l)
		tkRepo = taskPostgre.New(pool, l)
		l.Info(ctx, "Storage: postgres")
	}

	var transcriber deepgram.ITranscriber
	if cfg.Deepgram.APIKey != "" {
		transcriber, err = deepgram.New(deepgram.Config{APIKey: cfg.Deepgram.APIKey, Model: cfg.Deepgram.Model})
		if err != nil {
			l.Warnf(ctx, "Deepgram not available (optional): %v", err)
			transcriber = nil
		}
	} else {
		l.Info(ctx, "Deepgram API key missing, audio upload disabled")
	}

	var calendar taskUC.CalendarPublisher
	if !opts.DisableCalendar && cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			l.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		} else {
			calendar = client
			l.Info(ctx, "Google Calendar mirror enabled")
		}
	}

	a.Transcripts = transcriptUC.New(l, trRepo, llm, transcriber, transcriptUC.Options{
		SummaryEnabled: cfg.Pipeline.SummaryEnabled,
	})
	a.Tasks = taskUC.New(l, tkRepo, a.Transcripts,
		extraction.New(l, extractionLLM),
		scheduling.New(clk, parser),
		calendar,
		taskUC.Options{
			Concurrency: cfg.Pipeline.Concurrency,
			CalendarID:  cfg.GoogleCalendar.CalendarID,
			Timezone:    parser.Location().String(),
		},
	)

	return a, nil
}

// Ready reports whether storage is reachable.
func (a *App) Ready(ctx context.Context) error {
	if a.pool == nil {
		return nil
	}
	return a.pool.Ping(ctx)
}

// Close releases the database pool, if any.
func (a *App) Close(ctx context.Context) {
	if a.pool != nil {
		postgres.Close(ctx, a.pool, a.l)
	}
}
