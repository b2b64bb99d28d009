package http

import (
	"time"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task"
)

// --- Response DTOs ---

// taskView is a persisted task with its optional event link.
type taskView struct {
	ID           string  `json:"id"`
	TranscriptID string  `json:"transcript_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      string  `json:"due_date"`
	AssignedTo   string  `json:"assigned_to"`
	Priority     string  `json:"priority"`
	CanSchedule  bool    `json:"canSchedule"`
	EventID      *string `json:"event_id,omitempty"`
}

func newTaskView(t model.Task) taskView {
	return taskView{
		ID:           t.ID,
		TranscriptID: t.TranscriptID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		AssignedTo:   t.AssignedTo,
		Priority:     string(t.Priority),
		CanSchedule:  t.CanSchedule,
		EventID:      t.EventID,
	}
}

type eventView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	AssignedTo   string    `json:"assigned_to"`
	Priority     string    `json:"priority"`
	TaskID       string    `json:"task_id"`
	TranscriptID string    `json:"transcript_id"`
	Recurrence   *string   `json:"recurrence,omitempty"`
}

func newEventView(e model.Event) eventView {
	v := eventView{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		AssignedTo:   e.AssignedTo,
		Priority:     string(e.Priority),
		TaskID:       e.TaskID,
		TranscriptID: e.TranscriptID,
	}
	if e.Recurrence != nil {
		r := string(*e.Recurrence)
		v.Recurrence = &r
	}
	return v
}

type extractResp struct {
	Tasks []taskView `json:"tasks"`
}

func (h *handler) newExtractResp(out task.PipelineOutput) extractResp {
	tasks := make([]taskView, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskView(t)
	}
	return extractResp{Tasks: tasks}
}

type listEventsResp struct {
	Events []eventView `json:"events"`
}

func (h *handler) newListEventsResp(out task.ListEventsOutput) listEventsResp {
	events := make([]eventView, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventView(e)
	}
	return listEventsResp{Events: events}
}

type taskDetailResp struct {
	Task taskView `json:"task"`
}

type scheduleResp struct {
	Task    taskView   `json:"task"`
	Event   *eventView `json:"event,omitempty"`
	Created bool       `json:"created"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	resp := scheduleResp{Task: newTaskView(out.Task), Created: out.Created}
	if out.Event != nil {
		e := newEventView(*out.Event)
		resp.Event = &e
	}
	return resp
}
