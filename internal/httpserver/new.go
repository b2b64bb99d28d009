package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/internal/middleware"
	taskHTTP "meeting-task-pipeline/internal/task/delivery/http"
	transcriptHTTP "meeting-task-pipeline/internal/transcript/delivery/http"
	"meeting-task-pipeline/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	startedAt   time.Time

	// Domains
	transcriptHandler transcriptHTTP.Handler
	taskHandler       taskHTTP.Handler

	// readiness reports whether storage is reachable. Nil means always ready.
	readiness func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// are believed. Empty trusts none and uses the peer address.
	TrustedProxies []string

	TranscriptHandler transcriptHTTP.Handler
	TaskHandler       taskHTTP.Handler

	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		startedAt:         time.Now(),
		transcriptHandler: cfg.TranscriptHandler,
		taskHandler:       cfg.TaskHandler,
		readiness:         cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.transcriptHandler == nil || srv.taskHandler == nil {
		return errors.New("transcript and task handlers are required")
	}
	return nil
}
