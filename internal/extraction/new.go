package extraction

import (
	"meeting-task-pipeline/pkg/log"
)

type implExtractor struct {
	l       log.Logger
	llm     Completer
	metrics *Metrics
}

// New creates an Extractor backed by llm.
func New(l log.Logger, llm Completer) Extractor {
	return &implExtractor{
		l:       l,
		llm:     llm,
		metrics: NewMetrics(),
	}
}
