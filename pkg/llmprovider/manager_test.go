package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/pkg/gemini"
	"meeting-task-pipeline/pkg/log"
)

type mockProvider struct {
	name      string
	model     string
	failTimes int
	failWith  error
	text      string
	callCount int
	lastReq   Request
}

func (m *mockProvider) Complete(ctx context.Context, req Request) (Response, error) {
	m.callCount++
	m.lastReq = req
	if m.callCount <= m.failTimes {
		if m.failWith != nil {
			return Response{}, m.failWith
		}
		return Response{}, errors.New("mock provider error")
	}
	return Response{Text: m.text, Provider: m.name, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func TestManager_Complete(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", text: "hello"}
	m := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, log.NewNop())

	text, err := m.Complete(context.Background(), "summarize")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "summarize", primary.lastReq.Prompt)
	assert.False(t, primary.lastReq.JSON)

	text, err = m.JSON().Complete(context.Background(), "extract tasks")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.True(t, primary.lastReq.JSON)
	assert.Equal(t, 2, primary.callCount)
}

func TestManager_Complete_EmptyPrompt(t *testing.T) {
	p := &mockProvider{}
	m := NewManager([]Provider{p}, nil, log.NewNop())

	_, err := m.Complete(context.Background(), " \n")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, p.callCount)
}

func TestManager_RetryThenSuccess(t *testing.T) {
	p := &mockProvider{name: "p", failTimes: 2, text: "ok"}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, log.NewNop())

	resp, err := m.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, p.callCount)
}

func TestManager_NonRetryableSkipsRetries(t *testing.T) {
	authErr := &gemini.APIError{StatusCode: http.StatusUnauthorized, Message: "bad key"}
	primary := &mockProvider{name: "primary", failTimes: 100, failWith: authErr}
	secondary := &mockProvider{name: "secondary", text: "fine"}

	m := NewManager([]Provider{primary, secondary},
		&Config{FallbackEnabled: true, RetryAttempts: 5, RetryDelay: time.Millisecond}, log.NewNop())

	text, err := m.Complete(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "fine", text)
	assert.Equal(t, 1, primary.callCount)
}

func TestManager_Fallback(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 100}
	secondary := &mockProvider{name: "secondary", text: "from secondary"}

	t.Run("enabled", func(t *testing.T) {
		m := NewManager([]Provider{primary, secondary},
			&Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, log.NewNop())

		text, err := m.Complete(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "from secondary", text)
	})

	t.Run("disabled", func(t *testing.T) {
		secondary.callCount = 0
		m := NewManager([]Provider{primary, secondary},
			&Config{FallbackEnabled: false, RetryAttempts: 1}, log.NewNop())

		_, err := m.Complete(context.Background(), "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)

		var pErr *ProviderError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, "primary", pErr.Provider)
		assert.Equal(t, 1, pErr.Attempts)
		assert.Equal(t, 0, secondary.callCount)
	})
}

func TestManager_NoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, log.NewNop())
	_, err := m.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestManager_CancelledContext(t *testing.T) {
	p := &mockProvider{name: "p", text: "never"}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, log.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p.callCount)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transport", errors.New("connection reset"), true},
		{"rate limited", &gemini.APIError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &gemini.APIError{StatusCode: http.StatusBadGateway}, true},
		{"bad request", &gemini.APIError{StatusCode: http.StatusBadRequest}, false},
		{"deadline", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
