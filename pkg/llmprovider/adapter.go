package llmprovider

import (
	"context"

	"meeting-task-pipeline/pkg/deepseek"
	"meeting-task-pipeline/pkg/gemini"
)

const (
	providerGemini   = "gemini"
	providerDeepSeek = "deepseek"
)

// GeminiAdapter exposes pkg/gemini as a Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Complete(ctx context.Context, req Request) (Response, error) {
	resp, err := a.client.GenerateContent(ctx, gemini.Request{
		SystemInstruction: req.System,
		Prompt:            req.Prompt,
		JSON:              req.JSON,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return Response{}, err
	}

	return Response{
		Text:     resp.Text,
		Provider: providerGemini,
		Model:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return providerGemini }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter exposes pkg/deepseek as a Provider.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Complete(ctx context.Context, req Request) (Response, error) {
	dsReq := deepseek.NewPromptRequest(req.System, req.Prompt, req.JSON)
	dsReq.Temperature = req.Temperature
	dsReq.MaxTokens = req.MaxTokens

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return Response{}, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return Response{
		Text:     resp.Text(),
		Provider: providerDeepSeek,
		Model:    model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *DeepSeekAdapter) Name() string  { return providerDeepSeek }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }
