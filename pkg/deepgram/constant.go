package deepgram

import "time"

const (
	// DefaultBaseURL is the Deepgram REST endpoint
	DefaultBaseURL = "https://api.deepgram.com/v1"

	// DefaultModel is the default speech-to-text model
	DefaultModel = "nova-3"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second
)
