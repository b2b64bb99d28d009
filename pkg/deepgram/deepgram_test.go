package deepgram_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/pkg/deepgram"
)

func TestNew(t *testing.T) {
	_, err := deepgram.New(deepgram.Config{})
	assert.Error(t, err)
}

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token dg-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/listen", r.URL.Path)
		assert.Equal(t, "nova-3", r.URL.Query().Get("model"))
		assert.Equal(t, "true", r.URL.Query().Get("smart_format"))
		assert.Equal(t, "audio/wav", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		if string(body) == "silence" {
			w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`))
			return
		}
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"Bob will send the report.","confidence":0.98}]}]}}`))
	}))
	defer ts.Close()

	client, err := deepgram.New(deepgram.Config{APIKey: "dg-key", BaseURL: ts.URL})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		text, err := client.Transcribe(context.Background(), strings.NewReader("RIFF...."), "audio/wav")
		require.NoError(t, err)
		assert.Equal(t, "Bob will send the report.", text)
	})

	t.Run("empty transcript", func(t *testing.T) {
		_, err := client.Transcribe(context.Background(), strings.NewReader("silence"), "audio/wav")
		assert.ErrorIs(t, err, deepgram.ErrEmptyTranscript)
	})

	t.Run("unauthorized", func(t *testing.T) {
		bad, err := deepgram.New(deepgram.Config{APIKey: "wrong", BaseURL: ts.URL})
		require.NoError(t, err)
		_, err = bad.Transcribe(context.Background(), strings.NewReader("x"), "audio/wav")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
