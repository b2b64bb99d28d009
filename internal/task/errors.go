package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTranscriptID = errors.New("transcript id is empty")
	ErrEmptyTaskID       = errors.New("task id is empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrEventNotFound     = errors.New("event not found")
)
