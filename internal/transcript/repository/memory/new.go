package memory

import (
	"sync"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/transcript/repository"
	"meeting-task-pipeline/pkg/clock"
)

type implRepository struct {
	mu          sync.RWMutex
	clock       clock.Clock
	transcripts map[string]model.Transcript
}

// New creates an in-memory transcript Repository.
func New(c clock.Clock) repository.Repository {
	return &implRepository{
		clock:       c,
		transcripts: make(map[string]model.Transcript),
	}
}
