package config

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingAPIKey signals that the required API key env var is absent. It is
// surfaced before any network call is attempted.
var ErrMissingAPIKey = errors.New("config: " + envAPIKey + " is required")

// Config holds runtime configuration for SDK consumers.
type Config struct {
	APIKey      string
	BaseURL     string
	DataBaseURL string
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables. Only the API key is
// required; everything else has sensible defaults.
func Load() (Config, error) {
	apiKey := strings.TrimSpace(envOrDefault(envAPIKey, ""))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return Config{
		APIKey:      apiKey,
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		DataBaseURL: envOrDefault(envDataBaseURL, defaultDataBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		LogLevel:    envOrDefault(envLogLevel, "info"),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		Metrics:     loadMetrics(),
	}, nil
}
