package transcript

import "errors"

var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrEmptyTranscript    = errors.New("transcript text is empty")
	ErrNoFileUploaded     = errors.New("no audio file uploaded")
	ErrAlreadyCorrected   = errors.New("transcript has already been corrected")
	ErrAlreadyExtracted   = errors.New("tasks were already extracted from this transcript")
	ErrTranscription      = errors.New("audio transcription failed")
)
