package gcalendar

import "time"

// DefaultCalendarID is used when a request does not name a calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string   // IANA name, e.g. "Europe/Berlin"
	Recurrence  []string // RRULE lines, e.g. "RRULE:FREQ=WEEKLY"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  []string
}
