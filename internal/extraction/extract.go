package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meeting-task-pipeline/internal/model"
)

// Extract implements Extractor.
func (e *implExtractor) Extract(ctx context.Context, transcript string) ([]model.TaskDraft, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	start := time.Now()
	raw, err := e.llm.Complete(ctx, BuildPrompt(transcript))
	e.metrics.ModelLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrModelService, err)
		e.l.Warnf(ctx, "extraction.Extract: %v", err)
		e.metrics.RunsTotal.WithLabelValues(outcomeModelError).Inc()
		return []model.TaskDraft{}, nil
	}

	payload, err := Sanitize(raw)
	if err != nil {
		e.l.Warnf(ctx, "extraction.Extract: %v (response_length=%d)", err, len(raw))
		e.metrics.RunsTotal.WithLabelValues(failureOutcome(err)).Inc()
		return []model.TaskDraft{}, nil
	}

	drafts, skipped := Normalize(payload)
	if skipped > 0 {
		e.l.Warnf(ctx, "extraction.Extract: skipped %d malformed task element(s)", skipped)
	}

	if len(drafts) == 0 {
		e.metrics.RunsTotal.WithLabelValues(outcomeEmpty).Inc()
	} else {
		e.metrics.RunsTotal.WithLabelValues(outcomeOK).Inc()
	}
	e.metrics.TasksTotal.Add(float64(len(drafts)))
	e.l.Infof(ctx, "extraction.Extract: %d task draft(s) extracted", len(drafts))

	return drafts, nil
}

func failureOutcome(err error) string {
	if errors.Is(err, ErrValidationFailure) {
		return outcomeValidationFailure
	}
	return outcomeParseFailure
}

// Normalize converts validated task elements into drafts. Elements that are
// not objects or have no title are skipped and counted.
func Normalize(p Payload) ([]model.TaskDraft, int) {
	drafts := make([]model.TaskDraft, 0, len(p.Tasks))
	skipped := 0

	for _, raw := range p.Tasks {
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			skipped++
			continue
		}

		title := strings.TrimSpace(asString(fields["title"]))
		if title == "" {
			skipped++
			continue
		}

		canSchedule, ok := fields["canSchedule"]
		if !ok {
			canSchedule = fields["can_schedule"]
		}

		drafts = append(drafts, model.TaskDraft{
			Title:       title,
			Description: asString(fields["description"]),
			DueDate:     asString(fields["due_date"]),
			AssignedTo:  asString(fields["assigned_to"]),
			Priority:    model.ParsePriority(asString(fields["priority"])),
			CanSchedule: asBool(canSchedule),
		})
	}

	return drafts, skipped
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	default:
		return false
	}
}
