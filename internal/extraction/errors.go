package extraction

import "errors"

var (
	// ErrEmptyTranscript is returned when extraction is asked to run on blank text.
	ErrEmptyTranscript = errors.New("transcript text is empty")

	// ErrModelService wraps any failure of the completion capability.
	ErrModelService = errors.New("model service error")

	// ErrParseFailure means no JSON object could be recovered from the response.
	ErrParseFailure = errors.New("model response is not parseable JSON")

	// ErrValidationFailure means a JSON object was recovered but it has no tasks array.
	ErrValidationFailure = errors.New("model response has no tasks array")
)
