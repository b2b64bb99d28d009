package extraction

import "strings"

const extractionInstructions = `Extract tasks from the meeting transcript and provide due dates, responsible persons, priority, and whether each task can be placed on a calendar.
Return ONLY a valid JSON object, with no explanations and no text before or after it:
{
  "tasks": [
    { "title": "Task title", "description": "Task details", "due_date": "YYYY-MM-DD", "assigned_to": "Person name", "priority": "High/Medium/Low", "canSchedule": true/false }
  ]
}
If a task repeats, set due_date to exactly one of: Daily, Weekly, Monthly.
If no tasks are found, return {"tasks": []}.`

// BuildPrompt renders the single extraction prompt for a transcript.
func BuildPrompt(transcript string) string {
	var b strings.Builder
	b.Grow(len(extractionInstructions) + len(transcript) + 16)
	b.WriteString(extractionInstructions)
	b.WriteString("\n\nTranscript:\n")
	b.WriteString(transcript)
	return b.String()
}
