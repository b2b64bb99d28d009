package llmprovider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-pipeline/config"
	"meeting-task-pipeline/pkg/llmprovider"
	"meeting-task-pipeline/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by priority, disabled skipped", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "d", Model: "deepseek-chat"},
				{Name: "gemini", Enabled: false, Priority: 3, APIKey: "g", Model: "gemini-pro"},
			},
		}

		providers, err := llmprovider.InitializeProviders(ctx, cfg, log.NewNop())
		require.NoError(t, err)
		require.Len(t, providers, 2)
		assert.Equal(t, "deepseek", providers[0].Name())
		assert.Equal(t, "gemini", providers[1].Name())
	})

	t.Run("broken provider skipped", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "unknown", Enabled: true, Priority: 1, APIKey: "x", Model: "y"},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			},
		}

		providers, err := llmprovider.InitializeProviders(ctx, cfg, log.NewNop())
		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.Equal(t, "gemini-2.5-flash", providers[0].Model())
	})

	t.Run("nothing enabled", func(t *testing.T) {
		_, err := llmprovider.InitializeProviders(ctx, &config.LLMConfig{}, log.NewNop())
		assert.ErrorIs(t, err, llmprovider.ErrNoProvidersConfigured)
	})

	t.Run("all fail", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}},
		}
		_, err := llmprovider.InitializeProviders(ctx, cfg, log.NewNop())
		assert.Error(t, err)
	})
}

func TestNewManagerFromConfig(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers:       []config.ProviderConfig{{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "d", Model: "deepseek-chat"}},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "not-a-duration",
	}
	m, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, m)
}
