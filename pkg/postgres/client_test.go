package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"meeting-task-pipeline/pkg/log"
	"meeting-task-pipeline/pkg/postgres"
)

func TestNewPool_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	_, err := postgres.NewPool(ctx, postgres.Config{}, log.NewNop())
	assert.Error(t, err)

	_, err = postgres.NewPool(ctx, postgres.Config{DSN: "://not a dsn"}, log.NewNop())
	assert.Error(t, err)
}

func TestClose_NilPool(t *testing.T) {
	assert.NotPanics(t, func() {
		postgres.Close(context.Background(), nil, log.NewNop())
	})
}
