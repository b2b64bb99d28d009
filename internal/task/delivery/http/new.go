package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/pkg/log"
)

// Handler is the HTTP delivery surface of the task domain.
type Handler interface {
	ExtractTasks(c *gin.Context)
	ListEvents(c *gin.Context)
	Detail(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
