package config

import "time"

const (
	envAPIKey      = "CEBL_API_KEY"
	envBaseURL     = "CEBL_BASE_URL"
	envDataBaseURL = "CEBL_DATA_BASE_URL"
	envHTTPTimeout = "CEBL_HTTP_TIMEOUT"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"

	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultBaseURL     = "https://api.data.cebl.ca"
	defaultDataBaseURL = "https://fibalivestats.dcd.shared.geniussports.com/data"
	defaultMetricsPort = "9090"
	// Full-season listings can take several seconds on the upstream side.
	defaultHTTPTimeout = 20 * time.Second
)
