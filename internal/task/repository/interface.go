package repository

import (
	"context"

	"meeting-task-pipeline/internal/model"
)

// TaskRepository stores tasks. Lookups by an unknown id return ErrNotFound.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	// ListTasks returns tasks in extraction order (Position).
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// AttachEvent sets the task's event id if it has none. A task that is
	// already linked yields ErrConditionFailed and is left unchanged.
	AttachEvent(ctx context.Context, opt AttachEventOptions) (model.Task, error)
}

// EventRepository stores events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	// ListEventsByTranscript returns events in creation order.
	ListEventsByTranscript(ctx context.Context, transcriptID string) ([]model.Event, error)

	// DeleteEvent removes an event that lost the race to be attached.
	DeleteEvent(ctx context.Context, id string) error
}

// Repository is the combined task and event store.
type Repository interface {
	TaskRepository
	EventRepository
}
