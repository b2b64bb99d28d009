package gemini

import "context"

// IGemini is a single-turn client for the generateContent endpoint.
// Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req Request) (Response, error)
	Model() string
}

// New creates a Gemini client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
