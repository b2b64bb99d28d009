package scheduling

import (
	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/pkg/clock"
	"meeting-task-pipeline/pkg/datemath"
)

// Policy decides whether and how a task becomes a calendar event.
type Policy interface {
	// Decide returns the event draft for t, or false when t must not be scheduled.
	Decide(t model.Task) (model.EventDraft, bool)
}

type implPolicy struct {
	clock  clock.Clock
	parser *datemath.Parser
}

// New creates the scheduling Policy. Dates are interpreted in the parser's timezone.
func New(c clock.Clock, parser *datemath.Parser) Policy {
	return &implPolicy{clock: c, parser: parser}
}

// Decide implements Policy.
//
// Recurring tasks start and end at the processing time. Dated tasks start at the
// processing time and end at the due date. Anything else ends at the
// processing time too.
func (p *implPolicy) Decide(t model.Task) (model.EventDraft, bool) {
	if !t.CanSchedule {
		return model.EventDraft{}, false
	}

	now := p.clock.Now()
	draft := model.EventDraft{
		Title:        t.Title,
		Description:  t.Description,
		StartTime:    now,
		EndTime:      now,
		AssignedTo:   t.AssignedTo,
		Priority:     t.Priority,
		TaskID:       t.ID,
		TranscriptID: t.TranscriptID,
	}

	if r, ok := model.ParseRecurrence(t.DueDate); ok {
		draft.Recurrence = &r
		return draft, true
	}

	if due, err := p.parser.ParseDate(t.DueDate); err == nil {
		draft.EndTime = due
	}

	return draft, true
}
