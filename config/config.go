package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage    StorageConfig
	Postgres   PostgresConfig
	Migrations MigrationsConfig

	// Pipeline
	Pipeline  PipelineConfig
	RateLimit RateLimitConfig

	// External collaborators
	GoogleCalendar GoogleCalendarConfig
	Deepgram       DeepgramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the repository backend: "memory" or "postgres".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type MigrationsConfig struct {
	Enabled bool
	Path    string
}

type PipelineConfig struct {
	Concurrency    int
	Timezone       string
	SummaryEnabled bool
}

type RateLimitConfig struct {
	ExtractPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type DeepgramConfig struct {
	APIKey string
	Model  string
}

// LLMConfig lists the model providers in fallback order.
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      string           `mapstructure:"retry_delay"`
	MaxTotalTimeout string           `mapstructure:"max_total_timeout"`
}

// ProviderConfig is one entry of llm.providers. APIKey may be written as
// ${ENV_VAR}.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Load reads .env (if any), then config.yaml from ./config, . or /etc/app/,
// with environment variables taking precedence (dots become underscores).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadYAML builds a Config from YAML content, still honouring environment overrides.
func LoadYAML(r io.Reader) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = firstNonEmpty(v.GetString("database_url"), v.GetString("postgres.dsn"))
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = v.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = v.GetDuration("postgres.max_conn_lifetime")
	cfg.Migrations.Enabled = v.GetBool("migrations.enabled")
	cfg.Migrations.Path = v.GetString("migrations.path")

	// Pipeline
	cfg.Pipeline.Concurrency = v.GetInt("pipeline.concurrency")
	cfg.Pipeline.Timezone = v.GetString("pipeline.timezone")
	cfg.Pipeline.SummaryEnabled = v.GetBool("pipeline.summary_enabled")
	cfg.RateLimit.ExtractPerMin = v.GetInt("rate_limit.extract_per_min")

	// External collaborators
	cfg.GoogleCalendar.CredentialsPath = firstNonEmpty(v.GetString("google_calendar_credentials"), v.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.Deepgram.APIKey = expandEnvVar(v.GetString("deepgram.api_key"))
	cfg.Deepgram.Model = v.GetString("deepgram.model")

	// LLM
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	if err := v.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("error decoding llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if c.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required when storage.driver is postgres")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (want memory or postgres)", c.Storage.Driver)
	}

	if c.Postgres.MaxConnLifetime < 0 {
		return fmt.Errorf("postgres.max_conn_lifetime must not be negative")
	}

	if c.Pipeline.Concurrency <= 0 {
		return fmt.Errorf("pipeline.concurrency must be positive")
	}

	if err := validateLLMConfig(&c.LLM); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", "30m")
	v.SetDefault("migrations.enabled", true)
	v.SetDefault("migrations.path", "migrations")

	v.SetDefault("pipeline.concurrency", 4)
	v.SetDefault("pipeline.timezone", "UTC")
	v.SetDefault("pipeline.summary_enabled", true)
	v.SetDefault("rate_limit.extract_per_min", 30)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("deepgram.model", "nova-3")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar resolves a value of the form ${NAME} from the environment.
// Anything else is returned unchanged.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	if env, ok := os.LookupEnv(value[2 : len(value)-1]); ok {
		return env
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}
