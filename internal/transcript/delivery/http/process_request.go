package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-pipeline/internal/transcript"
)

const audioField = "audio"

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUploadReq opens the multipart audio part. The caller closes it.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	fh, err := c.FormFile(audioField)
	if err != nil {
		return uploadReq{}, transcript.ErrNoFileUploaded
	}

	f, err := fh.Open()
	if err != nil {
		return uploadReq{}, err
	}

	return uploadReq{
		audio:    f,
		mimeType: fh.Header.Get("Content-Type"),
		fileName: fh.Filename,
	}, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
