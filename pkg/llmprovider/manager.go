package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meeting-task-pipeline/pkg/log"
)

// Manager walks the providers in priority order with per-provider retry.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	metrics   *Metrics
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // budget for the whole fallback chain
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
		metrics:   NewMetrics(),
	}
}

// Complete sends prompt as plain text and returns the first answer.
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	return m.complete(ctx, Request{Prompt: prompt})
}

// CompleteJSON is Complete with the providers' JSON output mode switched on.
func (m *Manager) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	return m.complete(ctx, Request{Prompt: prompt, JSON: true})
}

// JSON returns m as a completer that always asks for JSON output.
func (m *Manager) JSON() JSONCompleter {
	return JSONCompleter{m: m}
}

// JSONCompleter routes Complete to Manager.CompleteJSON.
type JSONCompleter struct {
	m *Manager
}

func (c JSONCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return c.m.CompleteJSON(ctx, prompt)
}

func (m *Manager) complete(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", ErrInvalidRequest
	}
	resp, err := m.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Generate tries each provider until one answers. Without FallbackEnabled only
// the first provider is used.
func (m *Manager) Generate(ctx context.Context, req Request) (Response, error) {
	if len(m.providers) == 0 {
		return Response{}, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return Response{}, fmt.Errorf("%w: global timeout exceeded: %v", ErrProviderTimeout, err)
			}
			return Response{}, err
		}
		if i > 0 {
			m.metrics.Fallbacks.Inc()
		}

		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logger.Infof(ctx, "llmprovider.Generate: provider=%s model=%s json=%t input_tokens=%d output_tokens=%d",
				provider.Name(), provider.Model(), req.JSON, resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		m.logger.Warnf(ctx, "llmprovider.Generate: provider=%s model=%s attempts=%d error=%v",
			provider.Name(), provider.Model(), attempts, err)
		lastErr = &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return Response{}, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with linear backoff while the error is retryable.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req Request) (Response, int, error) {
	attempts := m.config.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return Response{}, attempt, ctx.Err()
			}
		}

		start := time.Now()
		resp, err := provider.Complete(ctx, req)
		m.metrics.Duration.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())
		if err == nil {
			m.metrics.Requests.WithLabelValues(provider.Name(), outcomeSuccess).Inc()
			return resp, attempt + 1, nil
		}

		m.metrics.Requests.WithLabelValues(provider.Name(), outcomeError).Inc()
		lastErr = err
		if !IsRetryable(err) {
			return Response{}, attempt + 1, err
		}
	}

	return Response{}, attempts, lastErr
}
