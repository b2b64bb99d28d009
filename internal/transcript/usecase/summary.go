package usecase

import (
	"context"
	"strings"
)

const summaryPrompt = "Summarize the following transcript. Return a concise summary in plain text:\n"

// summarize asks the model for a summary. Failures yield "".
func (uc *implUseCase) summarize(ctx context.Context, text string) string {
	if uc.llm == nil {
		return ""
	}

	raw, err := uc.llm.Complete(ctx, summaryPrompt+text)
	if err != nil {
		uc.l.Warnf(ctx, "uc.summarize: %v", err)
		return ""
	}

	return strings.TrimSpace(strings.ReplaceAll(raw, "```", ""))
}
