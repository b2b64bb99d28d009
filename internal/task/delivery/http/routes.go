package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/internal/middleware"
)

// RegisterRoutes maps the pipeline and task endpoints under rg.
// Extraction calls the model, so it is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	transcripts := rg.Group("/transcripts")
	{
		transcripts.POST("/:id/extract-tasks", mw.RateLimit(), h.ExtractTasks)
		transcripts.GET("/:id/events", h.ListEvents)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/schedule", h.Schedule)
	}
}
