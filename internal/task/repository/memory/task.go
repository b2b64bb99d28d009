package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:           uuid.NewString(),
		TranscriptID: opt.TranscriptID,
		Title:        opt.Draft.Title,
		Description:  opt.Draft.Description,
		DueDate:      opt.Draft.DueDate,
		AssignedTo:   opt.Draft.AssignedTo,
		Priority:     opt.Draft.Priority,
		CanSchedule:  opt.Draft.CanSchedule,
		Position:     opt.Position,
		CreatedAt:    r.clock.Now(),
	}

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.taskOrder = append(r.taskOrder, t.ID)
	r.mu.Unlock()

	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return copyTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, id := range r.taskOrder {
		t := r.tasks[id]
		if opt.TranscriptID != "" && t.TranscriptID != opt.TranscriptID {
			continue
		}
		out = append(out, copyTask(t))
	}
	if opt.TranscriptID != "" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	}
	return out, nil
}

func (r *implRepository) AttachEvent(ctx context.Context, opt repository.AttachEventOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.TaskID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	if t.HasEvent() {
		return model.Task{}, repository.ErrConditionFailed
	}

	eventID := opt.EventID
	t.EventID = &eventID
	r.tasks[t.ID] = t
	return copyTask(t), nil
}

// copyTask detaches the EventID pointer from the stored record.
func copyTask(t model.Task) model.Task {
	if t.EventID != nil {
		id := *t.EventID
		t.EventID = &id
	}
	return t
}
