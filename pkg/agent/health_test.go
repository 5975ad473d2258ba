package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getStatus(t *testing.T, h http.Handler, path string) (int, metrics.HealthStatus) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body metrics.HealthStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

func TestHealthHandlerLiveness(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "alive", body["status"])
	assert.NotEmpty(t, body["uptime"])
}

func TestHealthHandlerMetrics(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flowsched_agent_tasks_running")
}

func TestAgentReportsComponentHealth(t *testing.T) {
	metrics.SetCriticalComponents(ComponentAgent, ComponentRuntime)
	t.Cleanup(func() { metrics.SetCriticalComponents("scheduler", "api") })

	f := newFixture(t, Config{}, testSampler())
	h := HealthHandler()

	require.Eventually(t, func() bool {
		code, _ := getStatus(t, h, "/ready")
		return code == http.StatusOK
	}, 5*time.Second, 5*time.Millisecond)
	_, ready := getStatus(t, h, "/ready")
	assert.Equal(t, metrics.StatusReady, ready.Components[ComponentAgent])
	assert.Equal(t, metrics.StatusReady, ready.Components[ComponentRuntime])

	f.runtime.failStarts(errors.New("image pull failed"))
	task := types.NewTask("web", "busybox", "", nil, false)
	require.NoError(t, f.sched.InsertTask(task))

	require.Eventually(t, func() bool {
		code, _ := getStatus(t, h, "/health")
		return code == http.StatusServiceUnavailable
	}, 5*time.Second, 5*time.Millisecond)
	_, health := getStatus(t, h, "/health")
	assert.Equal(t, metrics.StatusUnhealthy, health.Status)
	assert.Contains(t, health.Components[ComponentRuntime], "image pull failed")

	code, ready := getStatus(t, h, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, metrics.StatusNotReady, ready.Status)
	assert.Empty(t, f.agent.Running())
}
