package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/pkg/response"
)

// ExtractTasks godoc
// @Summary     Extract tasks from a transcript
// @Description Runs the extraction pipeline: the model extracts tasks, tasks are stored and schedulable ones get an event.
// @Description An empty list does not prove the transcript has no tasks.
// @Tags        Pipeline
// @Produce     json
// @Param       id path string true "Transcript ID"
// @Success     200 {object} extractResp
// @Failure     404 {object} response.Resp "Transcript not found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/transcripts/{id}/extract-tasks [POST]
func (h *handler) ExtractTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RunExtractionPipeline(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RunExtractionPipeline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	for _, f := range output.Failures {
		h.l.Warnf(ctx, "uc.RunExtractionPipeline: task %q failed at %s: %v", f.Title, f.Stage, f.Err)
	}

	response.OK(c, h.newExtractResp(output))
}

// ListEvents godoc
// @Summary     List events of a transcript
// @Tags        Pipeline
// @Produce     json
// @Param       id path string true "Transcript ID"
// @Success     200 {object} listEventsResp
// @Failure     404 {object} response.Resp "Transcript not found"
// @Router      /api/v1/transcripts/{id}/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListEvents(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.GetTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskDetailResp{Task: newTaskView(t)})
}

// Schedule godoc
// @Summary     Schedule a task
// @Description Applies the scheduling policy to a stored task. A task that already has an event keeps it.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ScheduleTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
