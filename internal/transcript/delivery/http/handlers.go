package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/pkg/response"
)

// Create godoc
// @Summary     Create a transcript
// @Description Stores transcript text and, when enabled, a model-written summary.
// @Tags        Transcripts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Transcript text"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transcripts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Transcript))
}

// Upload godoc
// @Summary     Upload meeting audio
// @Description Transcribes the uploaded audio and stores the transcript.
// @Tags        Transcripts
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio recording"
// @Success     200   {object} detailResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Failure     502   {object} response.Resp "Transcription failed"
// @Router      /api/v1/transcripts/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	defer req.audio.Close()

	output, err := h.uc.Upload(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Transcript))
}

// Detail godoc
// @Summary     Get transcript detail
// @Tags        Transcripts
// @Produce     json
// @Param       id path string true "Transcript ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transcripts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Transcript))
}

// Update godoc
// @Summary     Correct transcript text
// @Description Replaces the text once, before tasks are extracted.
// @Tags        Transcripts
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Transcript ID"
// @Param       body body updateReq true "Corrected text"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already corrected or extracted"
// @Router      /api/v1/transcripts/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output.Transcript))
}
