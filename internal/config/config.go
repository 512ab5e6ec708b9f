package config

import (
	"fmt"
	"net/url"

	pkgconfig "github.com/oskarlind/shopthelook/pkg/config"
)

// Classifier strategies for deciding which product option slot holds color
// and which holds size.
const (
	ClassifierByNames  = "names"
	ClassifierByValues = "values"
)

// Config holds all configuration for the shopthelook widget service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Storefront upstream (Shopify-style AJAX endpoints)
	StorefrontBaseURL   string `env:"STOREFRONT_BASE_URL" envDefault:"http://localhost:8090"`
	StorefrontTimeoutMs int    `env:"STOREFRONT_TIMEOUT_MS" envDefault:"10000"`
	StorefrontRetries   int    `env:"STOREFRONT_MAX_RETRIES" envDefault:"3"`

	// ClassifierStrategy selects how option slots are assigned to color and
	// size: "names" inspects option names, "values" inspects value shapes.
	ClassifierStrategy string `env:"CLASSIFIER_STRATEGY" envDefault:"names"`

	// PostgreSQL (scenes, hotspots, promotion rules)
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"shopthelook"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"shopthelook_secret"`
	PostgresDB   string `env:"POSTGRES_DB_NAME" envDefault:"shopthelook_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Database pool
	DBMaxConns            int32 `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns            int32 `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetimeMins int   `env:"DB_MAX_CONN_LIFETIME_MINUTES" envDefault:"60"`
	DBMaxConnIdleTimeMins int   `env:"DB_MAX_CONN_IDLE_TIME_MINUTES" envDefault:"30"`

	// Redis (product view cache)
	RedisHost       string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort       int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPass       string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	ProductCacheTTL int    `env:"PRODUCT_CACHE_TTL_SECONDS" envDefault:"300"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Circuit breaker for storefront calls
	CBMaxRequests  uint32  `env:"CB_MAX_REQUESTS" envDefault:"1"`
	CBInterval     int     `env:"CB_INTERVAL_SECONDS" envDefault:"60"`
	CBTimeout      int     `env:"CB_TIMEOUT_SECONDS" envDefault:"30"`
	CBFailureRatio float64 `env:"CB_FAILURE_RATIO" envDefault:"0.5"`
	CBMinRequests  uint32  `env:"CB_MIN_REQUESTS" envDefault:"5"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// CORS (origins of the storefront pages embedding the widget)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load shopthelook config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if _, err := url.ParseRequestURI(c.StorefrontBaseURL); err != nil {
		return fmt.Errorf("invalid STOREFRONT_BASE_URL %q: %w", c.StorefrontBaseURL, err)
	}
	if c.ClassifierStrategy != ClassifierByNames && c.ClassifierStrategy != ClassifierByValues {
		return fmt.Errorf("CLASSIFIER_STRATEGY must be %q or %q, got %q", ClassifierByNames, ClassifierByValues, c.ClassifierStrategy)
	}
	if c.PostgresHost == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if c.PostgresUser == "" {
		return fmt.Errorf("POSTGRES_USER is required")
	}
	if len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1.0 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %f", c.OTELSampleRate)
	}
	if c.ProductCacheTTL < 0 {
		return fmt.Errorf("PRODUCT_CACHE_TTL_SECONDS must not be negative")
	}
	return nil
}
