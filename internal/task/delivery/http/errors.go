package http

import (
	"errors"

	"meeting-task-pipeline/internal/extraction"
	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/internal/transcript"
	pkgErrors "meeting-task-pipeline/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrTranscriptNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, task.ErrEventNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, task.ErrEmptyTranscriptID),
		errors.Is(err, task.ErrEmptyTaskID),
		errors.Is(err, transcript.ErrEmptyTranscript),
		errors.Is(err, extraction.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
