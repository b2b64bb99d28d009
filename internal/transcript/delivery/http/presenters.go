package http

import (
	"io"
	"time"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/transcript"
)

// --- Request DTOs ---

type createReq struct {
	Text     string `json:"text"      binding:"required"`
	FilePath string `json:"file_path" binding:"max=1024"`
}

func (r createReq) toInput() transcript.CreateInput {
	return transcript.CreateInput{
		Text:     r.Text,
		FilePath: r.FilePath,
	}
}

type uploadReq struct {
	audio    io.ReadCloser
	mimeType string
	fileName string
}

func (r uploadReq) toInput() transcript.UploadInput {
	return transcript.UploadInput{
		Audio:    r.audio,
		MimeType: r.mimeType,
		FileName: r.fileName,
	}
}

type updateReq struct {
	ID   string `json:"-"`
	Text string `json:"text" binding:"required"`
}

func (r updateReq) toInput() transcript.UpdateTextInput {
	return transcript.UpdateTextInput{
		ID:   r.ID,
		Text: r.Text,
	}
}

// --- Response DTOs ---

type transcriptResp struct {
	ID        string    `json:"id"`
	FilePath  string    `json:"file_path,omitempty"`
	Text      string    `json:"text"`
	Summary   string    `json:"summary"`
	Corrected bool      `json:"corrected"`
	Extracted bool      `json:"extracted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTranscriptResp(t model.Transcript) transcriptResp {
	return transcriptResp{
		ID:        t.ID,
		FilePath:  t.FilePath,
		Text:      t.Text,
		Summary:   t.Summary,
		Corrected: t.Corrected,
		Extracted: t.Extracted,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type detailResp struct {
	Transcript transcriptResp `json:"transcript"`
}

func (h *handler) newDetailResp(t model.Transcript) detailResp {
	return detailResp{Transcript: newTranscriptResp(t)}
}
