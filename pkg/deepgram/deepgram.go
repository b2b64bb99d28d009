package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrEmptyTranscript is returned when Deepgram answers without any transcript.
var ErrEmptyTranscript = errors.New("deepgram: empty transcript")

// Transcribe implements ITranscriber with smart formatting enabled.
func (d *deepgramImpl) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	q := url.Values{}
	q.Set("model", d.model)
	q.Set("smart_format", "true")
	endpoint := d.baseURL + "/listen?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, audio)
	if err != nil {
		return "", fmt.Errorf("deepgram: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Token "+d.apiKey)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	httpReq.Header.Set("Content-Type", mimeType)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepgram: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("deepgram: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("deepgram: failed to decode response: %w", err)
	}

	if len(result.Results.Channels) == 0 || len(result.Results.Channels[0].Alternatives) == 0 {
		return "", ErrEmptyTranscript
	}
	text := result.Results.Channels[0].Alternatives[0].Transcript
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}
