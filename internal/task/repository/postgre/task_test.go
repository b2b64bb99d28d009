package postgre

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "meeting-task-pipeline/internal/task/repository"
	"meeting-task-pipeline/pkg/log"
)

// newUnreachable returns a repository whose pool never connects. pgxpool
// dials lazily, so only calls that reach SQL would fail.
func newUnreachable(t *testing.T) repo.Repository {
	t.Helper()
	pool, err := pgxpool.New(context.Background(), "postgres://pipeline@127.0.0.1:1/pipeline?sslmode=disable&connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return New(pool, log.NewNop())
}

func TestMalformedIDs(t *testing.T) {
	ctx := context.Background()
	r := newUnreachable(t)

	_, err := r.GetTask(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = r.AttachEvent(ctx, repo.AttachEventOptions{TaskID: "not-a-uuid", EventID: "e"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{TranscriptID: "not-a-uuid"})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = r.GetEvent(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	events, err := r.ListEventsByTranscript(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.ErrorIs(t, r.DeleteEvent(ctx, "not-a-uuid"), repo.ErrNotFound)
}
