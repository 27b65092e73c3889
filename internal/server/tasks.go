package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/li2990555-pixel/patapal11111/internal/engine"
	"github.com/li2990555-pixel/patapal11111/internal/mood"
	"github.com/li2990555-pixel/patapal11111/internal/store"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.db.ListTasks()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if tasks == nil {
		tasks = []store.Task{}
	}
	s.respond(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Priority string `json:"priority"`
		Deadline string `json:"deadline"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "task text is required")
		return
	}
	if !store.ValidPriority(req.Priority) {
		s.respondError(w, http.StatusBadRequest, "unknown priority quadrant")
		return
	}
	if req.Deadline != "" {
		if _, ok := engine.ParseDate(req.Deadline); !ok {
			s.respondError(w, http.StatusBadRequest, "deadline must be a YYYY-MM-DD date")
			return
		}
	}

	task, err := s.db.CreateTask(req.Text, req.Priority, req.Deadline)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusCreated, task)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	task, err := s.db.ToggleTask(id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		s.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	s.respond(w, http.StatusOK, task)
}

func (s *Server) handleFlowSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	var req struct {
		Seconds int `json:"seconds"`
		Pauses  int `json:"pauses"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Seconds < 0 || req.Pauses < 0 {
		s.respondError(w, http.StatusBadRequest, "seconds and pauses must be non-negative")
		return
	}

	task, err := s.db.AddFlowSession(id, req.Seconds, req.Pauses)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		s.respondError(w, http.StatusNotFound, "task not found")
		return
	}
	s.respond(w, http.StatusOK, task)
}

// handleTaskMood records the mood felt after finishing a task: the task is
// marked completed with the mood attached, and the mood joins today's
// history (duplicates for the day are suppressed).
func (s *Server) handleTaskMood(w http.ResponseWriter, r *http.Request) {
	id, ok := s.taskID(w, r)
	if !ok {
		return
	}

	var req struct {
		MoodID string `json:"moodId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, known := mood.Lookup(req.MoodID); !known {
		s.respondError(w, http.StatusBadRequest, "unknown mood")
		return
	}

	task, err := s.db.AssignMood(id, req.MoodID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		s.respondError(w, http.StatusNotFound, "task not found")
		return
	}

	today := engine.DateString(time.Now())
	if err := s.db.RecordMood(today, req.MoodID); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, task)
}

func (s *Server) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}
