package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/pkg/response"
)

const (
	ServiceName    = "meeting-task-pipeline"
	ServiceVersion = "1.0.0"
)

type statusResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Storage string `json:"storage,omitempty"`
}

func (srv *HTTPServer) status(state string) statusResp {
	return statusResp{
		Status:  state,
		Service: ServiceName,
		Version: ServiceVersion,
		Uptime:  time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck answers 503 until storage is reachable.
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body.Storage = "ok"

	if srv.readiness != nil {
		if err := srv.readiness(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			body.Status, body.Storage = "not_ready", "unreachable"
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "storage unreachable",
				Data:      body,
			})
			return
		}
	}

	response.OK(c, body)
}

// liveCheck
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
