package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	CORSAllowedOrigins []string
	LogFormat          string
	LogLevel           string
	MetricsNamespace   string
	MetricsBucketsCSV  string
	CatalogPath        string
	CatalogJSON        string
	RateLimitWindow    time.Duration
	RateLimitMax       int
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		LogFormat:          valueOrDefault(k.String("OBS_LOG_FORMAT"), "json"),
		LogLevel:           valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		MetricsNamespace:   valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "discount"),
		MetricsBucketsCSV:  k.String("OBS_METRICS_BUCKETS_MS"),
		CatalogPath:        strings.TrimSpace(k.String("CATALOG_PATH")),
		CatalogJSON:        strings.TrimSpace(k.String("CATALOG_JSON")),
		RateLimitWindow:    parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
		RateLimitMax:       parseInt(k, "RATE_LIMIT_MAX", 120),
		ShutdownTimeout:    parseDuration(k.String("SHUTDOWN_TIMEOUT"), "10s"),
	}

	if cfg.CatalogPath == "" && cfg.CatalogJSON == "" {
		return nil, errors.New("CATALOG_PATH or CATALOG_JSON is required")
	}
	if cfg.CatalogPath != "" && cfg.CatalogJSON != "" {
		return nil, errors.New("CATALOG_PATH and CATALOG_JSON are mutually exclusive")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseInt(k *koanf.Koanf, key string, fallback int) int {
	if !k.Exists(key) {
		return fallback
	}
	if v := k.Int(key); v > 0 {
		return v
	}
	return fallback
}
