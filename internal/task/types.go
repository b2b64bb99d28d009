package task

import (
	"meeting-task-pipeline/internal/model"
)

// PipelineOutput is the aggregate result of one pipeline run.
type PipelineOutput struct {
	TranscriptID string
	Tasks        []model.Task // persisted tasks in extraction order
	EventCount   int
	Failures     []TaskFailure
	Replayed     bool // tasks came from an earlier run of the same transcript
}

// TaskFailure records a per-task error that did not abort the run.
type TaskFailure struct {
	Title  string
	TaskID string // empty when the task itself could not be stored
	Stage  model.PipelineStage
	Err    error
}

// ListEventsOutput is the result of ListEvents.
type ListEventsOutput struct {
	Events []model.Event
}

// ScheduleOutput is the result of ScheduleTask.
type ScheduleOutput struct {
	Task    model.Task
	Event   *model.Event // nil when the policy declined the task
	Created bool         // false when an existing link was returned
}
