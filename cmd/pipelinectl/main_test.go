package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/config"
	"meeting-task-pipeline/internal/app"
	"meeting-task-pipeline/pkg/log"
)

func TestRunSanitize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    string
		tasks   int
		wantErr bool
	}{
		{"fenced", "```json\n{\"tasks\":[{\"title\":\"Standup\",\"due_date\":\"Daily\",\"canSchedule\":true}]}\n```", "ok", 1, false},
		{"no braces", "no json here", "parse_failure", 0, true},
		{"tasks not a list", `{"tasks":"soon"}`, "validation_failure", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runSanitize(&buf, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			var res sanitizeResult
			require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
			assert.Equal(t, tt.kind, res.Kind)
			assert.Len(t, res.Tasks, tt.tasks)
		})
	}
}

type cannedLLM struct{ response string }

func (c cannedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

func TestRunExtract(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Pipeline: config.PipelineConfig{Concurrency: 1, Timezone: "UTC"}}
	a, err := app.New(ctx, cfg, log.NewNop(), app.Options{
		LLM:             cannedLLM{response: `{"tasks":[{"title":"Send report","due_date":"Friday","canSchedule":false},{"title":"Standup","due_date":"Daily","canSchedule":true}]}`},
		ForceMemory:     true,
		DisableCalendar: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runExtract(ctx, &buf, a, "Bob sends the report Friday. Standup daily."))

	var res extractResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res.Tasks, 2)
	assert.Nil(t, res.Tasks[0].EventID)
	require.NotNil(t, res.Tasks[1].EventID)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "Daily", res.Events[0].Recurrence)
	assert.Equal(t, *res.Tasks[1].EventID, res.Events[0].ID)
}

func TestReadInputStdin(t *testing.T) {
	got, err := readInput(strings.NewReader("hello"), "-")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = readInput(nil, "/definitely/not/here.txt")
	assert.Error(t, err)
}
