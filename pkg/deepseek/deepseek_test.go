package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/pkg/deepseek"
)

func TestNew(t *testing.T) {
	_, err := deepseek.New(deepseek.Config{})
	assert.ErrorIs(t, err, deepseek.ErrMissingAPIKey)

	c, err := deepseek.New(deepseek.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, deepseek.DefaultModel, c.Model())
}

func TestNewPromptRequest(t *testing.T) {
	req := deepseek.NewPromptRequest("sys", "hi", true)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)

	plain := deepseek.NewPromptRequest("", "hi", false)
	assert.Len(t, plain.Messages, 1)
	assert.Nil(t, plain.ResponseFormat)
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}

		var req deepseek.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Messages[len(req.Messages)-1].Content == "busy" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`slow down`))
			return
		}
		assert.Equal(t, "deepseek-chat", req.Model)
		if assert.NotNil(t, req.ResponseFormat) {
			assert.Equal(t, "json_object", req.ResponseFormat.Type)
		}

		w.Write([]byte(`{"id":"1","model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"{\"tasks\":[]}"}}],"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}}`))
	}))
	defer ts.Close()

	c, err := deepseek.New(deepseek.Config{APIKey: "secret", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := c.GenerateContent(context.Background(), deepseek.NewPromptRequest("", "hi", true))
		require.NoError(t, err)
		assert.Equal(t, `{"tasks":[]}`, resp.Text())
		assert.Equal(t, 7, resp.Usage.TotalTokens)
	})

	t.Run("rate limited", func(t *testing.T) {
		_, err := c.GenerateContent(context.Background(), deepseek.NewPromptRequest("", "busy", false))
		var apiErr *deepseek.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Retryable())
		assert.Equal(t, "slow down", apiErr.Message)
	})

	t.Run("api error", func(t *testing.T) {
		bad, err := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		require.NoError(t, err)

		_, err = bad.GenerateContent(context.Background(), deepseek.NewPromptRequest("", "hi", false))
		var apiErr *deepseek.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.False(t, apiErr.Retryable())
		assert.Equal(t, "auth", apiErr.Type)
		assert.Contains(t, err.Error(), "bad key")
	})

	t.Run("no messages", func(t *testing.T) {
		_, err := c.GenerateContent(context.Background(), &deepseek.Request{})
		assert.Error(t, err)
	})
}
