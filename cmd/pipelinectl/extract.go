package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"meeting-task-pipeline/config"
	"meeting-task-pipeline/internal/app"
	"meeting-task-pipeline/internal/transcript"
	"meeting-task-pipeline/pkg/log"
)

var extractFile string

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "-", "Transcript text file (- for stdin)")
}

// extractCmd runs the whole pipeline against in-memory stores.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract tasks and events from a transcript file",
	Long: `Extract stores the transcript in memory, runs the extraction pipeline
and prints the resulting tasks and events as JSON. The calendar mirror is off.

Examples:
  pipelinectl extract --file standup.txt
  cat standup.txt | pipelinectl extract`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), extractFile)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Logs would interleave with the JSON on stdout.
		a, err := app.New(cmd.Context(), cfg, log.NewNop(), app.Options{ForceMemory: true, DisableCalendar: true})
		if err != nil {
			return err
		}
		defer a.Close(cmd.Context())

		return runExtract(cmd.Context(), cmd.OutOrStdout(), a, text)
	},
}

type extractResult struct {
	TranscriptID string        `json:"transcript_id"`
	Summary      string        `json:"summary,omitempty"`
	Tasks        []taskJSON    `json:"tasks"`
	Events       []eventJSON   `json:"events"`
	Failures     []failureJSON `json:"failures,omitempty"`
}

type taskJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	DueDate     string  `json:"due_date"`
	AssignedTo  string  `json:"assigned_to"`
	Priority    string  `json:"priority"`
	CanSchedule bool    `json:"canSchedule"`
	EventID     *string `json:"event_id,omitempty"`
}

type eventJSON struct {
	ID         string `json:"id"`
	TaskID     string `json:"task_id"`
	Title      string `json:"title"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Recurrence string `json:"recurrence,omitempty"`
}

type failureJSON struct {
	Title string `json:"title"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

func runExtract(ctx context.Context, w io.Writer, a *app.App, text string) error {
	created, err := a.Transcripts.Create(ctx, transcript.CreateInput{Text: text})
	if err != nil {
		return err
	}

	out, err := a.Tasks.RunExtractionPipeline(ctx, created.Transcript.ID)
	if err != nil {
		return err
	}
	events, err := a.Tasks.ListEvents(ctx, created.Transcript.ID)
	if err != nil {
		return err
	}

	res := extractResult{
		TranscriptID: created.Transcript.ID,
		Summary:      created.Transcript.Summary,
		Tasks:        make([]taskJSON, 0, len(out.Tasks)),
		Events:       make([]eventJSON, 0, len(events.Events)),
	}
	for _, t := range out.Tasks {
		res.Tasks = append(res.Tasks, taskJSON{
			ID:          t.ID,
			Title:       t.Title,
			DueDate:     t.DueDate,
			AssignedTo:  t.AssignedTo,
			Priority:    string(t.Priority),
			CanSchedule: t.CanSchedule,
			EventID:     t.EventID,
		})
	}
	for _, e := range events.Events {
		ej := eventJSON{
			ID:        e.ID,
			TaskID:    e.TaskID,
			Title:     e.Title,
			StartTime: e.StartTime.Format(time.RFC3339),
			EndTime:   e.EndTime.Format(time.RFC3339),
		}
		if e.Recurrence != nil {
			ej.Recurrence = string(*e.Recurrence)
		}
		res.Events = append(res.Events, ej)
	}
	for _, f := range out.Failures {
		res.Failures = append(res.Failures, failureJSON{Title: f.Title, Stage: string(f.Stage), Error: f.Err.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
