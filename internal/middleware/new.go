package middleware

import (
	"meeting-task-pipeline/pkg/log"
)

// Config tunes the shared middlewares.
type Config struct {
	ExtractPerMin int // requests per minute per client on the extraction endpoint
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg.ExtractPerMin),
	}
}
