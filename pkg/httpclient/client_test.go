package httpclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	return cfg
}

func TestClientRetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(fastConfig())
	resp, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(fastConfig())
	resp, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientRebuildsBodyOnRetry(t *testing.T) {
	var calls atomic.Int32
	var lastBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		lastBody.Store(string(buf[:n]))
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(fastConfig())
	resp, err := client.Post(context.Background(), srv.URL, "application/json", strings.NewReader(`{"items":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"items":[]}`, lastBody.Load())
}

func TestClientRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(fastConfig())
	_, err := client.Get(ctx, srv.URL) //nolint:bodyclose
	assert.Error(t, err)
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := fastConfig()
	cfg.MaxRetries = 0
	cbCfg := DefaultCircuitBreakerConfig("test-breaker")
	cbCfg.MinRequests = 3
	cbCfg.FailureRatio = 0.5

	cb := NewCircuitBreakerClient(New(cfg), cbCfg, testLogger())

	for i := 0; i < 5; i++ {
		resp, err := cb.Get(context.Background(), srv.URL)
		if err == nil {
			resp.Body.Close()
		}
	}

	_, err := cb.Get(context.Background(), srv.URL) //nolint:bodyclose
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreakerPassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cb := NewCircuitBreakerClient(New(fastConfig()), DefaultCircuitBreakerConfig("test-pass"), testLogger())
	resp, err := cb.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParseResponseError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
	}{
		{
			name:    "not found maps to NotFound",
			status:  http.StatusNotFound,
			body:    `{"status":404,"message":"Not Found"}`,
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "unprocessable maps to InvalidInput",
			status:  http.StatusUnprocessableEntity,
			body:    `{"status":422,"message":"Cart Error","description":"variant is sold out"}`,
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "service unavailable maps to ServiceUnavailable",
			status:  http.StatusServiceUnavailable,
			body:    `{"status":503,"message":"Service Unavailable"}`,
			wantErr: apperrors.ErrServiceUnavail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := http.Get(srv.URL)
			require.NoError(t, err)

			parsed := ParseResponseError(resp, "add to cart")
			require.Error(t, parsed)
			assert.True(t, errors.Is(parsed, tt.wantErr), "got %v", parsed)
		})
	}
}

func TestParseResponseErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)

	parsed := ParseResponseError(resp, "get product")
	require.Error(t, parsed)
	assert.Contains(t, parsed.Error(), "upstream exploded")
}
