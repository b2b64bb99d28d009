package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/internal/extraction"
	"meeting-task-pipeline/internal/middleware"
	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/internal/transcript"
	"meeting-task-pipeline/pkg/log"
)

type fakeUseCase struct {
	pipeline task.PipelineOutput
	err      error
}

func (f *fakeUseCase) RunExtractionPipeline(ctx context.Context, id string) (task.PipelineOutput, error) {
	return f.pipeline, f.err
}

func (f *fakeUseCase) ListEvents(ctx context.Context, id string) (task.ListEventsOutput, error) {
	if f.err != nil {
		return task.ListEventsOutput{}, f.err
	}
	daily := model.RecurrenceDaily
	return task.ListEventsOutput{Events: []model.Event{{ID: "ev-1", Title: "Standup", Recurrence: &daily}}}, nil
}

func (f *fakeUseCase) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, task.ErrTaskNotFound
}

func (f *fakeUseCase) ScheduleTask(ctx context.Context, id string) (task.ScheduleOutput, error) {
	return task.ScheduleOutput{}, f.err
}

func newRouter(uc task.UseCase, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{ExtractPerMin: perMin}))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func TestExtractTasks(t *testing.T) {
	ev := "ev-1"
	uc := &fakeUseCase{pipeline: task.PipelineOutput{Tasks: []model.Task{
		{ID: "t1", Title: "Standup", DueDate: "Daily", CanSchedule: true, Priority: model.PriorityUnknown, EventID: &ev},
		{ID: "t2", Title: "Send report", DueDate: "Friday"},
	}}}
	r := newRouter(uc, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transcripts/tr-1/extract-tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	var data struct {
		Tasks []map[string]any `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Tasks, 2)
	assert.Equal(t, "ev-1", data.Tasks[0]["event_id"])
	_, linked := data.Tasks[1]["event_id"]
	assert.False(t, linked)
}

func TestExtractTasks_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing transcript", transcript.ErrTranscriptNotFound, http.StatusNotFound},
		{"empty text", transcript.ErrEmptyTranscript, http.StatusBadRequest},
		{"blank stored transcript", extraction.ErrEmptyTranscript, http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&fakeUseCase{err: tt.err}, 0)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transcripts/x/extract-tasks", nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestExtractTasks_RateLimited(t *testing.T) {
	r := newRouter(&fakeUseCase{}, 6)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/transcripts/x/extract-tasks", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestListEventsAndDetail(t *testing.T) {
	r := newRouter(&fakeUseCase{}, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transcripts/tr-1/events", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recurrence":"Daily"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
