package extraction

import (
	"context"

	"meeting-task-pipeline/internal/model"
)

// Completer is the text-completion capability the extractor depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor turns transcript text into task drafts.
type Extractor interface {
	// Extract calls the model once. Model and parse failures degrade to an
	// empty result; only blank input is reported as an error.
	Extract(ctx context.Context, transcript string) ([]model.TaskDraft, error)
}
