package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choicefetch/src/app/middleware"
	"choicefetch/src/core/domain"
	"choicefetch/src/infra/config"
	"choicefetch/src/infra/logger"
)

type stubFetcher struct {
	choices   []domain.Choice
	err       error
	healthErr error
}

func (f *stubFetcher) Choices(context.Context, domain.Query) ([]domain.Choice, error) {
	return f.choices, f.err
}

func (f *stubFetcher) Health(context.Context) error {
	return f.healthErr
}

type stubReporter struct{}

func (stubReporter) Report() map[string]any {
	return map[string]any{"worker_state": "running"}
}

func newTestServer(fetcher *stubFetcher) *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Client: config.ClientConfig{ChoicesQuery: domain.DefaultChoicesQuery, QueueCapacity: 4},
		Log:    config.LogConfig{Level: "error"},
	}
	return New(cfg, logger.Discard(), fetcher, stubReporter{})
}

func get(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Router().ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestChoicesEndpoint(t *testing.T) {
	s := newTestServer(&stubFetcher{choices: []domain.Choice{
		{ID: "A1", Description: "Widget"},
		{ID: "A2", Description: ""},
	}})

	rec, body := get(t, s, "/v1/choices")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 2, data["count"])
	assert.Equal(t, []any{
		map[string]any{"id": "A1", "description": "Widget"},
		map[string]any{"id": "A2", "description": ""},
	}, data["choices"])
}

func TestChoicesEndpointEmpty(t *testing.T) {
	s := newTestServer(&stubFetcher{})

	rec, body := get(t, s, "/v1/choices")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, []any{}, data["choices"])
}

func TestChoicesEndpointErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"connection", domain.NewConnectionError(errors.New("refused")), http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE"},
		{"query", domain.NewQueryError(errors.New("syntax")), http.StatusBadGateway, "QUERY_FAILED"},
		{"row mapping", domain.NewRowMappingError(0, "id", errors.New("null")), http.StatusBadGateway, "ROW_MAPPING_FAILED"},
		{"shutdown", domain.ErrShutdown, http.StatusServiceUnavailable, "SHUTTING_DOWN"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT"},
		{"cancelled reply", domain.NewReplyCancelledError("worker stopped"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&stubFetcher{err: tt.err})

			rec, body := get(t, s, "/v1/choices")

			assert.Equal(t, tt.status, rec.Code)
			detail := body["error"].(map[string]any)
			assert.Equal(t, tt.code, detail["code"])
			assert.NotEmpty(t, detail["request_id"])
		})
	}
}

func TestDetailedHealth(t *testing.T) {
	s := newTestServer(&stubFetcher{})
	rec, body := get(t, s, "/health/detailed")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "running", body["details"].(map[string]any)["worker_state"])

	s = newTestServer(&stubFetcher{healthErr: errors.New("refused")})
	rec, body = get(t, s, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body["status"])
}

func TestNotFound(t *testing.T) {
	rec, body := get(t, newTestServer(&stubFetcher{}), "/v1/jokes")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
}
