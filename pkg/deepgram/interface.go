package deepgram

import (
	"context"
	"io"
)

// ITranscriber turns recorded audio into text.
type ITranscriber interface {
	// Transcribe sends audio of the given MIME type and returns the best transcript.
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)
}

// New creates a new Deepgram client with the given configuration
func New(cfg Config) (ITranscriber, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &deepgramImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
