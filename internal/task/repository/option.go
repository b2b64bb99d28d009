package repository

import (
	"meeting-task-pipeline/internal/model"
)

// CreateTaskOptions holds the parameters for storing an extracted task.
type CreateTaskOptions struct {
	TranscriptID string
	Position     int
	Draft        model.TaskDraft
}

// ListTasksOptions filters ListTasks. Tasks of one transcript come back in
// Position order.
type ListTasksOptions struct {
	TranscriptID string
}

// AttachEventOptions links an event to a task.
type AttachEventOptions struct {
	TaskID  string
	EventID string
}

// CreateEventOptions holds the parameters for storing an event.
type CreateEventOptions struct {
	Draft model.EventDraft
}
