package task

import (
	"context"

	"meeting-task-pipeline/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RunExtractionPipeline extracts tasks from a transcript, persists them and
	// creates events for the schedulable ones. Only a missing transcript or an
	// invalid id aborts the run; per-task failures are reported in the output.
	RunExtractionPipeline(ctx context.Context, transcriptID string) (PipelineOutput, error)

	// ListEvents returns the events created for a transcript.
	ListEvents(ctx context.Context, transcriptID string) (ListEventsOutput, error)

	GetTask(ctx context.Context, id string) (model.Task, error)

	// ScheduleTask applies the scheduling policy to one stored task. A task that
	// already has an event keeps it.
	ScheduleTask(ctx context.Context, id string) (ScheduleOutput, error)
}
