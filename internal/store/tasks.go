package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Eisenhower-matrix quadrants.
const (
	PriorityUrgentImportant       = "URGENT_IMPORTANT"
	PriorityImportantNotUrgent    = "IMPORTANT_NOT_URGENT"
	PriorityUrgentNotImportant    = "URGENT_NOT_IMPORTANT"
	PriorityNotImportantNotUrgent = "NOT_IMPORTANT_NOT_URGENT"
)

// ValidPriority reports whether p names one of the four quadrants.
func ValidPriority(p string) bool {
	switch p {
	case PriorityUrgentImportant, PriorityImportantNotUrgent,
		PriorityUrgentNotImportant, PriorityNotImportantNotUrgent:
		return true
	}
	return false
}

// Task is a board item. The id doubles as the creation timestamp
// (unix millis), which downstream date aggregation relies on.
type Task struct {
	ID           int64  `json:"id"`
	Text         string `json:"text"`
	Completed    bool   `json:"completed"`
	Priority     string `json:"priority"`
	Deadline     string `json:"deadline,omitempty"`
	FlowDuration int    `json:"flowDuration"` // seconds, accumulated
	PauseCount   int    `json:"pauseCount"`
	MoodID       string `json:"moodId,omitempty"`
}

// CreatedAt returns the task's creation time, derived from its id.
func (t *Task) CreatedAt() time.Time {
	return time.UnixMilli(t.ID)
}

// CreateTask inserts a new task keyed by the current unix-millis timestamp.
// If a task already exists at that millisecond the id is nudged forward.
func (db *DB) CreateTask(text, priority, deadline string) (*Task, error) {
	id := time.Now().UnixMilli()
	for {
		_, err := db.Exec(`
			INSERT INTO tasks (id, text, priority, deadline)
			VALUES (?, ?, ?, NULLIF(?, ''))
		`, id, text, priority, deadline)
		if err == nil {
			break
		}
		if isUniqueViolation(err) {
			id++
			continue
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &Task{ID: id, Text: text, Priority: priority, Deadline: deadline}, nil
}

// GetTask returns a task by id, or nil if none exists.
func (db *DB) GetTask(id int64) (*Task, error) {
	row := db.QueryRow(`
		SELECT id, text, completed, priority, COALESCE(deadline, ''), flow_duration, pause_count, COALESCE(mood_id, '')
		FROM tasks WHERE id = ?
	`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks returns all tasks, newest first.
func (db *DB) ListTasks() ([]Task, error) {
	rows, err := db.Query(`
		SELECT id, text, completed, priority, COALESCE(deadline, ''), flow_duration, pause_count, COALESCE(mood_id, '')
		FROM tasks ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// ToggleTask flips the completed flag and returns the updated task.
func (db *DB) ToggleTask(id int64) (*Task, error) {
	result, err := db.Exec(`UPDATE tasks SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}
	return db.GetTask(id)
}

// AddFlowSession accumulates a finished focus session onto a task.
func (db *DB) AddFlowSession(id int64, seconds, pauses int) (*Task, error) {
	result, err := db.Exec(`
		UPDATE tasks SET flow_duration = flow_duration + ?, pause_count = pause_count + ?
		WHERE id = ?
	`, seconds, pauses, id)
	if err != nil {
		return nil, fmt.Errorf("add flow session: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}
	return db.GetTask(id)
}

// AssignMood records the mood felt after a task and marks it completed.
func (db *DB) AssignMood(id int64, moodID string) (*Task, error) {
	result, err := db.Exec(`
		UPDATE tasks SET mood_id = ?, completed = 1 WHERE id = ?
	`, moodID, id)
	if err != nil {
		return nil, fmt.Errorf("assign mood: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}
	return db.GetTask(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*Task, error) {
	var t Task
	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.Priority, &t.Deadline, &t.FlowDuration, &t.PauseCount, &t.MoodID); err != nil {
		return nil, err
	}
	return &t, nil
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite surfaces constraint failures in the error text.
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
