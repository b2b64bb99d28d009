package transcript

import (
	"io"

	"meeting-task-pipeline/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Text     string
	FilePath string
}

type UploadInput struct {
	Audio    io.Reader
	MimeType string
	FileName string
}

type UpdateTextInput struct {
	ID   string
	Text string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Transcript model.Transcript
}

type DetailOutput struct {
	Transcript model.Transcript
}

type UpdateTextOutput struct {
	Transcript model.Transcript
}
