package deepseek

import "context"

// IDeepSeek is a client for the OpenAI-compatible chat completions endpoint.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
