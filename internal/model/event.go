package model

import (
	"strings"
	"time"
)

// Recurrence is the period of a recurring event.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

// ParseRecurrence matches s against the recurrence tokens, ignoring case and
// surrounding whitespace.
func ParseRecurrence(s string) (Recurrence, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return RecurrenceDaily, true
	case "weekly":
		return RecurrenceWeekly, true
	case "monthly":
		return RecurrenceMonthly, true
	default:
		return "", false
	}
}

// RRule returns the iCalendar recurrence rule for r.
func (r Recurrence) RRule() string {
	switch r {
	case RecurrenceDaily:
		return "RRULE:FREQ=DAILY"
	case RecurrenceWeekly:
		return "RRULE:FREQ=WEEKLY"
	case RecurrenceMonthly:
		return "RRULE:FREQ=MONTHLY"
	default:
		return ""
	}
}

// EventDraft is the output of the scheduling policy, ready to be persisted.
type EventDraft struct {
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	AssignedTo   string
	Priority     Priority
	TaskID       string
	TranscriptID string
	Recurrence   *Recurrence
}

// Event is a persisted calendar event derived from exactly one task.
type Event struct {
	ID           string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	AssignedTo   string
	Priority     Priority
	TaskID       string
	TranscriptID string
	Recurrence   *Recurrence
	CreatedAt    time.Time
}
