package http

import (
	"errors"

	"meeting-task-pipeline/internal/transcript"
	pkgErrors "meeting-task-pipeline/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(400, "id is required")

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrTranscriptNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, transcript.ErrEmptyTranscript),
		errors.Is(err, transcript.ErrNoFileUploaded):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, transcript.ErrAlreadyCorrected),
		errors.Is(err, transcript.ErrAlreadyExtracted):
		return pkgErrors.NewHTTPError(409, err.Error())
	case errors.Is(err, transcript.ErrTranscription):
		return pkgErrors.NewHTTPError(502, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
