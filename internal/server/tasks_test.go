package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/li2990555-pixel/patapal11111/internal/engine"
	"github.com/li2990555-pixel/patapal11111/internal/store"
)

func createTask(t *testing.T, srv *Server, text, priority string) store.Task {
	t.Helper()
	w := doJSON(t, srv, "POST", "/api/tasks", map[string]string{
		"text": text, "priority": priority,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create task: status = %d, body %s", w.Code, w.Body.String())
	}
	var task store.Task
	decodeBody(t, w, &task)
	return task
}

func TestTaskLifecycle(t *testing.T) {
	srv := testServer(t, nil)

	task := createTask(t, srv, "finish report", store.PriorityUrgentImportant)
	if task.ID == 0 || task.Completed {
		t.Fatalf("created task = %+v", task)
	}

	w := doJSON(t, srv, "POST", fmt.Sprintf("/api/tasks/%d/toggle", task.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status = %d", w.Code)
	}
	var toggled store.Task
	decodeBody(t, w, &toggled)
	if !toggled.Completed {
		t.Error("task not completed after toggle")
	}

	w = doJSON(t, srv, "POST", fmt.Sprintf("/api/tasks/%d/flow", task.ID), map[string]int{
		"seconds": 1500, "pauses": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("flow: status = %d, body %s", w.Code, w.Body.String())
	}
	var after store.Task
	decodeBody(t, w, &after)
	if after.FlowDuration != 1500 || after.PauseCount != 2 {
		t.Errorf("flow = %d/%d, want 1500/2", after.FlowDuration, after.PauseCount)
	}

	w = doJSON(t, srv, "GET", "/api/tasks", nil)
	var list struct {
		Tasks []store.Task `json:"tasks"`
	}
	decodeBody(t, w, &list)
	if len(list.Tasks) != 1 {
		t.Errorf("len(tasks) = %d, want 1", len(list.Tasks))
	}
}

func TestCreateTaskValidation(t *testing.T) {
	srv := testServer(t, nil)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty text", map[string]string{"text": "  ", "priority": store.PriorityUrgentImportant}},
		{"bad priority", map[string]string{"text": "x", "priority": "someday"}},
		{"bad deadline", map[string]string{"text": "x", "priority": store.PriorityUrgentImportant, "deadline": "tomorrow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, "POST", "/api/tasks", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestTaskNotFound(t *testing.T) {
	srv := testServer(t, nil)

	w := doJSON(t, srv, "POST", "/api/tasks/12345/toggle", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("toggle missing: status = %d, want %d", w.Code, http.StatusNotFound)
	}
	w = doJSON(t, srv, "POST", "/api/tasks/notanumber/toggle", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTaskMoodRecordsHistory(t *testing.T) {
	srv := testServer(t, nil)
	task := createTask(t, srv, "water plants", store.PriorityImportantNotUrgent)

	w := doJSON(t, srv, "POST", fmt.Sprintf("/api/tasks/%d/mood", task.ID), map[string]string{
		"moodId": "joy",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("mood: status = %d, body %s", w.Code, w.Body.String())
	}
	var after store.Task
	decodeBody(t, w, &after)
	if !after.Completed || after.MoodID != "joy" {
		t.Errorf("task after mood = %+v", after)
	}

	today := engine.DateString(time.Now())
	moods, err := srv.db.MoodsForDate(today)
	if err != nil {
		t.Fatalf("MoodsForDate: %v", err)
	}
	if len(moods) != 1 || moods[0] != "joy" {
		t.Errorf("today's moods = %v, want [joy]", moods)
	}

	w = doJSON(t, srv, "POST", fmt.Sprintf("/api/tasks/%d/mood", task.ID), map[string]string{
		"moodId": "bliss",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown mood: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
