package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "users: registered accounts",
		SQL: `
CREATE TABLE users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    INTEGER NOT NULL
);
`,
	},
	{
		Version:     2,
		Description: "login_state: streak counters and first-login marker",
		SQL: `
CREATE TABLE login_state (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    last_login       TEXT NOT NULL,
    consecutive_days INTEGER NOT NULL DEFAULT 0,
    total_days       INTEGER NOT NULL DEFAULT 0,
    first_login_at   INTEGER NOT NULL
);
`,
	},
	{
		Version:     3,
		Description: "tasks: eisenhower board with focus sessions",
		SQL: `
CREATE TABLE tasks (
    id            INTEGER PRIMARY KEY,
    text          TEXT NOT NULL,
    completed     INTEGER NOT NULL DEFAULT 0,
    priority      TEXT NOT NULL CHECK (priority IN ('URGENT_IMPORTANT', 'IMPORTANT_NOT_URGENT', 'URGENT_NOT_IMPORTANT', 'NOT_IMPORTANT_NOT_URGENT')),
    deadline      TEXT,
    flow_duration INTEGER NOT NULL DEFAULT 0,
    pause_count   INTEGER NOT NULL DEFAULT 0,
    mood_id       TEXT
);

CREATE INDEX idx_tasks_completed ON tasks(completed);
`,
	},
	{
		Version:     4,
		Description: "mood_history: per-day recorded moods, insertion order kept",
		SQL: `
CREATE TABLE mood_history (
    id      INTEGER PRIMARY KEY,
    date    TEXT NOT NULL,
    mood_id TEXT NOT NULL,
    UNIQUE (date, mood_id)
);

CREATE INDEX idx_mood_history_date ON mood_history(date);
`,
	},
	{
		Version:     5,
		Description: "diary_entries: user and pata entries, one pata entry per day",
		SQL: `
CREATE TABLE diary_entries (
    id      INTEGER PRIMARY KEY,
    date    TEXT NOT NULL,
    content TEXT NOT NULL,
    author  TEXT NOT NULL DEFAULT 'user' CHECK (author IN ('user', 'pata'))
);

CREATE INDEX idx_diary_date ON diary_entries(date);
CREATE UNIQUE INDEX idx_diary_pata_per_day ON diary_entries(date) WHERE author = 'pata';
`,
	},
	{
		Version:     6,
		Description: "chat_messages: companion chat log with generation ids",
		SQL: `
CREATE TABLE chat_messages (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    sender        TEXT NOT NULL CHECK (sender IN ('user', 'pata')),
    message       TEXT NOT NULL DEFAULT '',
    generation_id TEXT,
    created_at    INTEGER NOT NULL
);

CREATE UNIQUE INDEX idx_chat_generation ON chat_messages(generation_id) WHERE generation_id IS NOT NULL;
`,
	},
	{
		Version:     7,
		Description: "companion_memory: remembered background for the current day",
		SQL: `
CREATE TABLE companion_memory (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    background TEXT NOT NULL,
    date       TEXT NOT NULL
);
`,
	},
	{
		Version:     8,
		Description: "settings: small key/value flags",
		SQL: `
CREATE TABLE settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
