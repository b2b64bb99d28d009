package usecase

import (
	"context"
	"strings"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/pkg/gcalendar"
)

// mirror pushes a stored event to the external calendar. Failures are logged
// and never affect the stored event.
func (uc *implUseCase) mirror(ctx context.Context, e model.Event) {
	if uc.calendar == nil {
		return
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     e.Title,
		Description: calendarDescription(e),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Timezone:    uc.opts.Timezone,
	}
	if e.Recurrence != nil {
		req.Recurrence = []string{e.Recurrence.RRule()}
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirror: calendar event for %q failed (non-fatal): %v", e.Title, err)
		return
	}
	uc.l.Debugf(ctx, "uc.mirror: event %s mirrored as %s", e.ID, created.ID)
}

func calendarDescription(e model.Event) string {
	var b strings.Builder
	b.WriteString(e.Description)
	if e.AssignedTo != "" {
		b.WriteString("\n\nAssigned to: " + e.AssignedTo)
	}
	if e.Priority != "" && e.Priority != model.PriorityUnknown {
		b.WriteString("\nPriority: " + string(e.Priority))
	}
	return strings.TrimSpace(b.String())
}
