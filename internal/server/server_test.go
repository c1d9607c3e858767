package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dwitter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecks(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["checks"].(map[string]any)["redis"])
}

func TestReadiness_RedisDown(t *testing.T) {
	env := newTestEnv(t, withRedis())
	env.mr.Close()

	resp := env.do(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.request(http.MethodDelete, "/dweets/1/", "")

	body := readBody(t, env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil)))
	assert.Contains(t, body, "dwitter_delete_decisions_total")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(models.NewNotFoundError("Dweet", 1)))
	assert.Equal(t, http.StatusForbidden, statusFor(models.NewForbiddenError("no")))
	assert.Equal(t, http.StatusBadRequest, statusFor(models.NewValidationError("bad")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestNewServerWithDeps_RequiresDB(t *testing.T) {
	_, err := NewServerWithDeps(nil, nil, nil)
	assert.Error(t, err)
}
