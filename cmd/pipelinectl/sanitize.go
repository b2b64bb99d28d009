package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"meeting-task-pipeline/internal/extraction"
)

var sanitizeFile string

func init() {
	sanitizeCmd.Flags().StringVarP(&sanitizeFile, "file", "f", "-", "Model response to sanitize (- for stdin)")
}

// sanitizeCmd shows what the sanitizer recovers from a raw model response.
var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Recover the task list from a raw model response",
	Long: `Sanitize strips code fences, recovers the outer JSON object and validates
its tasks field. On failure it reports whether parsing or validation failed.

Examples:
  pipelinectl sanitize --file response.txt
  echo '{"tasks":[]}' | pipelinectl sanitize`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), sanitizeFile)
		if err != nil {
			return err
		}
		return runSanitize(cmd.OutOrStdout(), raw)
	},
}

type sanitizeResult struct {
	Kind    string          `json:"kind"`
	Error   string          `json:"error,omitempty"`
	Skipped int             `json:"skipped,omitempty"`
	Tasks   []taskDraftJSON `json:"tasks"`
}

type taskDraftJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to"`
	Priority    string `json:"priority"`
	CanSchedule bool   `json:"canSchedule"`
}

func runSanitize(w io.Writer, raw string) error {
	res := sanitizeResult{Kind: "ok", Tasks: []taskDraftJSON{}}

	payload, err := extraction.Sanitize(raw)
	switch {
	case errors.Is(err, extraction.ErrValidationFailure):
		res.Kind, res.Error = "validation_failure", err.Error()
	case err != nil:
		res.Kind, res.Error = "parse_failure", err.Error()
	default:
		drafts, skipped := extraction.Normalize(payload)
		res.Skipped = skipped
		for _, d := range drafts {
			res.Tasks = append(res.Tasks, taskDraftJSON{
				Title:       d.Title,
				Description: d.Description,
				DueDate:     d.DueDate,
				AssignedTo:  d.AssignedTo,
				Priority:    string(d.Priority),
				CanSchedule: d.CanSchedule,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if res.Kind != "ok" {
		return fmt.Errorf("sanitize: %s", res.Kind)
	}
	return nil
}
