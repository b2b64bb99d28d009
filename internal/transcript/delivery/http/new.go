package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/internal/transcript"
	"meeting-task-pipeline/pkg/log"
)

// Handler is the HTTP delivery surface of the transcript domain.
type Handler interface {
	Create(c *gin.Context)
	Upload(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc transcript.UseCase
}

// New creates a new HTTP handler for the transcript domain.
func New(l log.Logger, uc transcript.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
