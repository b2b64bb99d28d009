package llmprovider

import "context"

// Provider is one configured model backend.
type Provider interface {
	Complete(ctx context.Context, req Request) (Response, error)

	// Name returns the provider name ("deepseek", "gemini").
	Name() string
	Model() string
}

// Request is a single-turn prompt. JSON asks the backend for a JSON object
// body when it supports that mode.
type Request struct {
	System      string
	Prompt      string
	JSON        bool
	Temperature float64
	MaxTokens   int
}

type Response struct {
	Text     string
	Provider string
	Model    string
	Usage    Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
