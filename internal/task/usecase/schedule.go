package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/internal/task/repository"
)

// ScheduleTask implements task.UseCase.
func (uc *implUseCase) ScheduleTask(ctx context.Context, id string) (task.ScheduleOutput, error) {
	t, err := uc.GetTask(ctx, id)
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	linked, event, created, err := uc.schedule(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask: task=%s: %v", t.ID, err)
		return task.ScheduleOutput{}, err
	}
	return task.ScheduleOutput{Task: linked, Event: event, Created: created}, nil
}

// schedule runs the policy for t and links the resulting event.
//
// A task that already has an event returns it unchanged. When another caller
// links the task first, the event created here is deleted and the winner's
// event is returned.
func (uc *implUseCase) schedule(ctx context.Context, t model.Task) (model.Task, *model.Event, bool, error) {
	if t.HasEvent() {
		existing, err := uc.existingEvent(ctx, *t.EventID)
		return t, existing, false, err
	}

	draft, ok := uc.policy.Decide(t)
	if !ok {
		return t, nil, false, nil
	}

	event, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{Draft: draft})
	if err != nil {
		return t, nil, false, fmt.Errorf("create event: %w", err)
	}

	linked, err := uc.repo.AttachEvent(ctx, repository.AttachEventOptions{TaskID: t.ID, EventID: event.ID})
	if err != nil {
		uc.compensate(ctx, event.ID)
		if !errors.Is(err, repository.ErrConditionFailed) {
			return t, nil, false, fmt.Errorf("attach event: %w", err)
		}

		current, getErr := uc.GetTask(ctx, t.ID)
		if getErr != nil {
			return t, nil, false, getErr
		}
		if !current.HasEvent() {
			return t, nil, false, fmt.Errorf("attach event: %w", err)
		}
		existing, getErr := uc.existingEvent(ctx, *current.EventID)
		return current, existing, false, getErr
	}

	uc.metrics.EventsCreated.Inc()
	uc.mirror(ctx, event)
	return linked, &event, true, nil
}

func (uc *implUseCase) existingEvent(ctx context.Context, id string) (*model.Event, error) {
	e, err := uc.repo.GetEvent(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, task.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// compensate removes an event that could not be linked to its task.
func (uc *implUseCase) compensate(ctx context.Context, eventID string) {
	if err := uc.repo.DeleteEvent(ctx, eventID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.compensate: delete event %s: %v", eventID, err)
	}
}

// GetTask implements task.UseCase.
func (uc *implUseCase) GetTask(ctx context.Context, id string) (model.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Task{}, task.ErrEmptyTaskID
	}

	t, err := uc.repo.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// ListEvents implements task.UseCase. An unknown transcript is NotFound.
func (uc *implUseCase) ListEvents(ctx context.Context, transcriptID string) (task.ListEventsOutput, error) {
	transcriptID = strings.TrimSpace(transcriptID)
	if transcriptID == "" {
		return task.ListEventsOutput{}, task.ErrEmptyTranscriptID
	}

	if _, err := uc.transcripts.GetTranscript(ctx, transcriptID); err != nil {
		return task.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEventsByTranscript(ctx, transcriptID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents: %v", err)
		return task.ListEventsOutput{}, err
	}
	return task.ListEventsOutput{Events: events}, nil
}
