package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ErrResponse is the body of every failed request
type ErrResponse struct {
	HTTPStatusCode int    `json:"httpStatusCode"`
	Message        string `json:"message"`
}

// TaskView is a task together with its placement
type TaskView struct {
	*types.Task
	ServerID *uuid.UUID `json:"server_id,omitempty"`
}

// ServerView is a server together with its subscription state
type ServerView struct {
	*types.Server
	Subscribed bool `json:"subscribed"`
}

// SubmitTaskRequest is the body of POST /api/tasks
type SubmitTaskRequest struct {
	Name     string                 `json:"name"`
	Image    string                 `json:"image"`
	Command  string                 `json:"command,omitempty"`
	Realtime bool                   `json:"realtime,omitempty"`
	Request  *types.ResourceProfile `json:"request,omitempty"`
}

const maxBodyBytes = 10 * 1024

func (d *Server) listServers(w http.ResponseWriter, r *http.Request) {
	servers := d.scheduler.Servers()
	out := make([]ServerView, 0, len(servers))
	for _, srv := range servers {
		out = append(out, ServerView{Server: srv, Subscribed: d.scheduler.Subscribed(srv.ID)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	schedule := d.scheduler.Schedule()
	tasks := d.scheduler.Tasks()
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskView(t, schedule))
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}
	t, err := d.scheduler.Task(id)
	if err != nil {
		d.writeSchedulerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskView(t, d.scheduler.Schedule()))
}

func (d *Server) submitTask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req SubmitTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Error unmarshalling body: %v", err))
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Task name is required")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "Task image is required")
		return
	}

	task := types.NewTask(req.Name, req.Image, req.Command, req.Request, req.Realtime)
	if err := d.scheduler.InsertTask(task); err != nil && !deliveryError(err) {
		d.writeSchedulerError(w, err)
		return
	} else if err != nil {
		d.logger.Warn().Err(err).Msg("Scheduling pass could not deliver every command")
	}

	t, err := d.scheduler.Task(task.ID)
	if err != nil {
		d.writeSchedulerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, taskView(t, d.scheduler.Schedule()))
}

func (d *Server) getSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := d.scheduler.Schedule()
	out := make(map[string]string, len(schedule))
	for taskID, serverID := range schedule {
		out[taskID.String()] = serverID.String()
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	snap := d.scheduler.Graph()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no scheduling pass has run yet")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (d *Server) getGraphDot(w http.ResponseWriter, r *http.Request) {
	snap := d.scheduler.Graph()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no scheduling pass has run yet")
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(snap.Dot))
}

func taskView(t *types.Task, schedule map[uuid.UUID]uuid.UUID) TaskView {
	v := TaskView{Task: t}
	if id, ok := schedule[t.ID]; ok {
		v.ServerID = &id
	}
	return v
}

func deliveryError(err error) bool {
	return errors.Is(err, scheduler.ErrNoSubscription) || errors.Is(err, scheduler.ErrSendTimeout)
}

func (d *Server) writeSchedulerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduler.ErrTaskNotFound), errors.Is(err, scheduler.ErrServerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduler.ErrTaskExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, scheduler.ErrInvalidTask), errors.Is(err, types.ErrInvalidProfile):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		d.logger.Error().Err(err).Msg("Request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrResponse{HTTPStatusCode: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
