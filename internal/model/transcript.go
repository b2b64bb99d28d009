package model

import "time"

// Transcript is the text of one meeting. Text may be corrected once, before
// tasks are extracted from it.
type Transcript struct {
	ID        string
	FilePath  string
	Text      string
	Summary   string
	Corrected bool
	Extracted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
