package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:8090", cfg.StorefrontBaseURL)
	assert.Equal(t, ClassifierByNames, cfg.ClassifierStrategy)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 300, cfg.ProductCacheTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("CLASSIFIER_STRATEGY", "values")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://other.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.HTTPPort)
	assert.Equal(t, ClassifierByValues, cfg.ClassifierStrategy)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "HTTP_PORT", "0"},
		{"invalid storefront URL", "STOREFRONT_BASE_URL", "not a url"},
		{"unknown classifier strategy", "CLASSIFIER_STRATEGY", "colors-first"},
		{"sample rate out of range", "OTEL_SAMPLE_RATE", "1.5"},
		{"negative cache TTL", "PRODUCT_CACHE_TTL_SECONDS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
