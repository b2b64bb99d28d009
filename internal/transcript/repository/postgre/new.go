package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"meeting-task-pipeline/internal/transcript/repository"
	"meeting-task-pipeline/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for transcripts.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("transcript/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("transcript/repository/postgre.%s", method)
}
