package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the transcript endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	transcripts := rg.Group("/transcripts")
	{
		transcripts.POST("", h.Create)
		transcripts.POST("/upload", h.Upload)
		transcripts.GET("/:id", h.Detail)
		transcripts.PUT("/:id", h.Update)
	}
}
