package memory

import (
	"context"

	"github.com/google/uuid"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task/repository"
)

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	d := opt.Draft
	e := model.Event{
		ID:           uuid.NewString(),
		Title:        d.Title,
		Description:  d.Description,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		AssignedTo:   d.AssignedTo,
		Priority:     d.Priority,
		TaskID:       d.TaskID,
		TranscriptID: d.TranscriptID,
		Recurrence:   copyRecurrence(d.Recurrence),
		CreatedAt:    r.clock.Now(),
	}

	r.mu.Lock()
	r.events[e.ID] = e
	r.eventOrder = append(r.eventOrder, e.ID)
	r.mu.Unlock()

	return e, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, repository.ErrNotFound
	}
	e.Recurrence = copyRecurrence(e.Recurrence)
	return e, nil
}

func (r *implRepository) ListEventsByTranscript(ctx context.Context, transcriptID string) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, 0)
	for _, id := range r.eventOrder {
		e, ok := r.events[id]
		if !ok || e.TranscriptID != transcriptID {
			continue
		}
		e.Recurrence = copyRecurrence(e.Recurrence)
		out = append(out, e)
	}
	return out, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	for i, eid := range r.eventOrder {
		if eid == id {
			r.eventOrder = append(r.eventOrder[:i], r.eventOrder[i+1:]...)
			break
		}
	}
	return nil
}

func copyRecurrence(r *model.Recurrence) *model.Recurrence {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}
