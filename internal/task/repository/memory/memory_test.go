package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task/repository"
	"meeting-task-pipeline/internal/task/repository/memory"
	"meeting-task-pipeline/pkg/clock"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestTasks(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(clock.Fixed(now))

	a, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		TranscriptID: "tr-1",
		Draft:        model.TaskDraft{Title: "Send report", DueDate: "Friday", Priority: model.PriorityHigh},
	})
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{TranscriptID: "tr-2", Draft: model.TaskDraft{Title: "Other"}})
	require.NoError(t, err)
	b, err := repo.CreateTask(ctx, repository.CreateTaskOptions{TranscriptID: "tr-1", Draft: model.TaskDraft{Title: "Standup"}})
	require.NoError(t, err)

	got, err := repo.GetTask(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Friday", got.DueDate)
	assert.Equal(t, now, got.CreatedAt)
	assert.Nil(t, got.EventID)

	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{TranscriptID: "tr-1"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	_, err = repo.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListTasksByPosition(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(clock.Fixed(now))

	for _, pos := range []int{2, 0, 1} {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			TranscriptID: "tr-1",
			Position:     pos,
			Draft:        model.TaskDraft{Title: fmt.Sprintf("task %d", pos)},
		})
		require.NoError(t, err)
	}

	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{TranscriptID: "tr-1"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, task := range list {
		assert.Equal(t, i, task.Position)
		assert.Equal(t, fmt.Sprintf("task %d", i), task.Title)
	}
}

func TestAttachEvent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(clock.Fixed(now))

	task, err := repo.CreateTask(ctx, repository.CreateTaskOptions{TranscriptID: "tr", Draft: model.TaskDraft{Title: "x"}})
	require.NoError(t, err)

	linked, err := repo.AttachEvent(ctx, repository.AttachEventOptions{TaskID: task.ID, EventID: "ev-1"})
	require.NoError(t, err)
	require.NotNil(t, linked.EventID)
	assert.Equal(t, "ev-1", *linked.EventID)

	_, err = repo.AttachEvent(ctx, repository.AttachEventOptions{TaskID: task.ID, EventID: "ev-2"})
	assert.ErrorIs(t, err, repository.ErrConditionFailed)

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", *got.EventID)

	_, err = repo.AttachEvent(ctx, repository.AttachEventOptions{TaskID: "missing", EventID: "ev"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttachEventConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(clock.Fixed(now))
	task, err := repo.CreateTask(ctx, repository.CreateTaskOptions{TranscriptID: "tr", Draft: model.TaskDraft{Title: "x"}})
	require.NoError(t, err)

	const n = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AttachEvent(ctx, repository.AttachEventOptions{TaskID: task.ID, EventID: string(rune('a' + i))})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(clock.Fixed(now))
	daily := model.RecurrenceDaily

	e1, err := repo.CreateEvent(ctx, repository.CreateEventOptions{Draft: model.EventDraft{
		Title: "Standup", TaskID: "t1", TranscriptID: "tr", StartTime: now, EndTime: now, Recurrence: &daily,
	}})
	require.NoError(t, err)
	e2, err := repo.CreateEvent(ctx, repository.CreateEventOptions{Draft: model.EventDraft{Title: "Review", TaskID: "t2", TranscriptID: "tr"}})
	require.NoError(t, err)
	_, err = repo.CreateEvent(ctx, repository.CreateEventOptions{Draft: model.EventDraft{Title: "Else", TaskID: "t3", TranscriptID: "other"}})
	require.NoError(t, err)

	got, err := repo.GetEvent(ctx, e1.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Recurrence)
	assert.Equal(t, model.RecurrenceDaily, *got.Recurrence)

	list, err := repo.ListEventsByTranscript(ctx, "tr")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, e1.ID, list[0].ID)
	assert.Equal(t, e2.ID, list[1].ID)

	require.NoError(t, repo.DeleteEvent(ctx, e1.ID))
	_, err = repo.GetEvent(ctx, e1.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteEvent(ctx, e1.ID), repository.ErrNotFound)

	list, err = repo.ListEventsByTranscript(ctx, "tr")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
