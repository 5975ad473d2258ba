package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cuemby/flowsched/pkg/api"
	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/storage"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sched  *scheduler.Scheduler
	broker *events.Broker
	server *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	broker := events.NewBroker()
	broker.Start()
	store := storage.NewMemoryStore()
	sched := scheduler.NewScheduler(scheduler.Config{Store: store, Events: broker, SendTimeout: 20 * time.Millisecond})

	d := NewServer(sched, broker, api.NewHealthServer(sched, store).GetHandler())
	ts := httptest.NewServer(d.Handler())
	t.Cleanup(func() {
		ts.Close()
		sched.Stop()
		broker.Stop()
	})
	return &fixture{sched: sched, broker: broker, server: ts}
}

func (f *fixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (f *fixture) addServer(t *testing.T, hostname string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, cancel := f.sched.SubscribeTasks(id)
	t.Cleanup(cancel)
	_, err := f.sched.RegisterServer(id, hostname)
	require.NoError(t, err)
	require.NoError(t, f.sched.SubmitBenchmark(id, types.ResourceProfile{
		IPC: decimal.NewFromInt(1), Memory: 1024, Network: 100, Disk: 100,
	}))
	return id
}

func TestHealthRoutes(t *testing.T) {
	metrics.RegisterComponent("scheduler", true, "running")
	metrics.RegisterComponent(api.ComponentAPI, true, "listening")
	f := newFixture(t)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/live", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, f.get(t, tt.path).StatusCode)
		})
	}
}

func TestSubmitAndListTasks(t *testing.T) {
	f := newFixture(t)
	srv := f.addServer(t, "node-a")

	body := `{"name":"web","image":"busybox","request":{"ipc":"0.5","memory":256}}`
	resp, err := http.Post(f.server.URL+"/api/tasks", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created TaskView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "web", created.Name)
	require.NotNil(t, created.ServerID)
	assert.Equal(t, srv, *created.ServerID)
	require.NotNil(t, created.Request)
	assert.Equal(t, uint64(256), created.Request.Memory)

	var tasks []TaskView
	require.NoError(t, json.NewDecoder(f.get(t, "/api/tasks").Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)

	resp = f.get(t, "/api/tasks/"+created.ID.String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var schedule map[string]string
	require.NoError(t, json.NewDecoder(f.get(t, "/api/schedule").Body).Decode(&schedule))
	assert.Equal(t, srv.String(), schedule[created.ID.String()])

	var servers []ServerView
	require.NoError(t, json.NewDecoder(f.get(t, "/api/servers").Body).Decode(&servers))
	require.Len(t, servers, 1)
	assert.True(t, servers[0].Subscribed)
}

func TestSubmitTaskErrors(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sched.InsertTask(types.NewTask("web", "busybox", "", nil, false)))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"no name", `{"image":"busybox"}`, http.StatusBadRequest},
		{"no image", `{"name":"db"}`, http.StatusBadRequest},
		{"negative ipc", `{"name":"db","image":"busybox","request":{"ipc":"-1"}}`, http.StatusBadRequest},
		{"duplicate", `{"name":"web","image":"busybox"}`, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(f.server.URL+"/api/tasks", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)

			var e ErrResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.Equal(t, tt.want, e.HTTPStatusCode)
		})
	}

	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/tasks/not-a-uuid").StatusCode)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/tasks/"+uuid.NewString()).StatusCode)
}

func TestGraphEndpoints(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusServiceUnavailable, f.get(t, "/api/schedule/graph").StatusCode)

	f.addServer(t, "node-a")
	require.NoError(t, f.sched.InsertTask(types.NewTask("web", "busybox", "", nil, false)))

	resp := f.get(t, "/api/schedule/graph")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap scheduler.GraphSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, int64(1), snap.Stats.Flow)
	require.NotEmpty(t, snap.Edges)
	for _, e := range snap.Edges {
		assert.True(t, strings.HasPrefix(e.Label, "fl:"), e.Label)
	}

	resp = f.get(t, "/api/schedule/graph.dot")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/vnd.graphviz")
	dot, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(dot), `[label="node-a"]`)
	assert.Contains(t, string(dot), `[label="web"]`)
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestGraphWebsocket(t *testing.T) {
	f := newFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(f.server, "/api/schedule/graph/ws"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, f.sched.Reschedule())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var snap scheduler.GraphSnapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, uint64(1), snap.Pass)
}

func TestEventsWebsocket(t *testing.T) {
	f := newFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(f.server, "/api/events"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return f.broker.SubscriberCount() == 1 }, time.Second, 5*time.Millisecond)

	_, err = f.sched.RegisterServer(uuid.New(), "node-a")
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev events.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, events.EventServerRegistered, ev.Type)
	assert.Equal(t, "node-a", ev.Metadata["hostname"])
}
