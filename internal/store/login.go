package store

import (
	"database/sql"
	"fmt"
	"time"
)

// LoginRecord holds the streak counters and the immutable first-login
// marker. There is a single record per installation.
type LoginRecord struct {
	LastLogin       string // date-only, "2006-01-02"
	ConsecutiveDays int
	TotalDays       int
	FirstLoginAt    int64 // unix millis, set once
}

// GetLoginRecord returns the stored login record, or nil if no login has
// ever been recorded. A scan failure is treated as absent state.
func (db *DB) GetLoginRecord() (*LoginRecord, error) {
	var r LoginRecord
	err := db.QueryRow(`
		SELECT last_login, consecutive_days, total_days, first_login_at
		FROM login_state WHERE id = 1
	`).Scan(&r.LastLogin, &r.ConsecutiveDays, &r.TotalDays, &r.FirstLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get login record: %w", err)
	}
	return &r, nil
}

// SaveLoginRecord upserts the login record. The first-login marker is only
// written on the initial insert and never updated afterwards.
func (db *DB) SaveLoginRecord(r LoginRecord) error {
	firstLogin := r.FirstLoginAt
	if firstLogin == 0 {
		firstLogin = time.Now().UnixMilli()
	}
	_, err := db.Exec(`
		INSERT INTO login_state (id, last_login, consecutive_days, total_days, first_login_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_login = excluded.last_login,
			consecutive_days = excluded.consecutive_days,
			total_days = excluded.total_days
	`, r.LastLogin, r.ConsecutiveDays, r.TotalDays, firstLogin)
	if err != nil {
		return fmt.Errorf("save login record: %w", err)
	}
	return nil
}
