package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	mimeJSON   = "application/json"
	headerKey  = "x-goog-api-key"
	roleUser   = "user"
	maxErrBody = 512
)
