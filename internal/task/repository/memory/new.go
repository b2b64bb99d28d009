package memory

import (
	"sync"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task/repository"
	"meeting-task-pipeline/pkg/clock"
)

type implRepository struct {
	mu    sync.RWMutex
	clock clock.Clock

	tasks     map[string]model.Task
	taskOrder []string

	events     map[string]model.Event
	eventOrder []string
}

// New creates an in-memory task and event Repository.
func New(c clock.Clock) repository.Repository {
	return &implRepository{
		clock:  c,
		tasks:  make(map[string]model.Task),
		events: make(map[string]model.Event),
	}
}
