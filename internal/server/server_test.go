package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nzyazin/fincalc/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Addr:            ":0",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Log:   config.LogConfig{Level: "info"},
		CORS:  config.CORSConfig{AllowedOrigins: []string{"*"}},
		Cache: config.CacheConfig{Backend: config.CacheMemory, TTL: time.Minute},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	srv, err := NewServer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServerCalculateAndMetrics(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"amount": 100000, "rate": 5, "term": 30}`

	first := do(srv, http.MethodPost, "/calculate/credit", body)
	second := do(srv, http.MethodPost, "/calculate/credit", body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	rec := do(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	exposition := rec.Body.String()
	assert.Contains(t, exposition, `fincalc_calculations_total{outcome="computed",scenario="credit"} 1`)
	assert.Contains(t, exposition, `fincalc_calculations_total{outcome="cached",scenario="credit"} 1`)
	assert.Contains(t, exposition, `handler="/calculate/{scenario}"`)
}

func TestServerCORSPreflight(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/calculate/credit", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RPS: 1, Burst: 1}
	srv := newTestServer(t, cfg)
	body := `{"annual_income": 50000, "annual_hours": 2000}`

	assert.Equal(t, http.StatusOK, do(srv, http.MethodPost, "/calculate/time-value", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(srv, http.MethodPost, "/calculate/time-value", body).Code)
	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/health", "").Code)
}

func TestServerPprofDisabledByDefault(t *testing.T) {
	srv := newTestServer(t, testConfig())

	assert.Equal(t, http.StatusNotFound, do(srv, http.MethodGet, "/debug/pprof/", "").Code)
}

func TestServerPprofEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.PprofEnabled = true
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/debug/pprof/", "").Code)
}

func TestServerWithoutCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Backend = config.CacheNone
	srv := newTestServer(t, cfg)

	rec := do(srv, http.MethodPost, "/calculate/tax", `{"income": 1000, "tax_rate": 20}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, srv.cache)
}

func TestServerHTTPServerBuiltUpFront(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.Addr = "127.0.0.1:0"
	srv := newTestServer(t, cfg)

	require.NotNil(t, srv.httpServer)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.Addr)
	assert.Equal(t, cfg.HTTP.ReadTimeout, srv.httpServer.ReadHeaderTimeout)
	require.NotNil(t, srv.httpServer.TLSConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), srv.httpServer.TLSConfig.MinVersion)
}

func TestServerShutdownWhileRunning(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.Addr = "127.0.0.1:0"
	srv, err := NewServer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}
