package model

import (
	"strings"
	"time"
)

// Priority is the urgency the model assigned to a task.
type Priority string

const (
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityUnknown Priority = "unknown"
)

// ParsePriority maps free-form model output onto a Priority. Anything
// outside High/Medium/Low (case-insensitive) is PriorityUnknown.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// TaskDraft is an extracted, not-yet-persisted task candidate.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string // stored as received, may be a date, a recurrence token or free text
	AssignedTo  string
	Priority    Priority
	CanSchedule bool
}

// Task is a persisted task. EventID is set at most once.
type Task struct {
	ID           string
	TranscriptID string
	Title        string
	Description  string
	DueDate      string
	AssignedTo   string
	Priority     Priority
	CanSchedule  bool
	Position     int // index in the extraction result
	EventID      *string
	CreatedAt    time.Time
}

// HasEvent reports whether the task is already linked to an event.
func (t Task) HasEvent() bool {
	return t.EventID != nil && *t.EventID != ""
}
