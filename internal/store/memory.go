package store

import (
	"database/sql"
	"fmt"
)

// CompanionMemory is the remembered companion background. It is only
// meaningful for the day it was derived on.
type CompanionMemory struct {
	Background string `json:"background"`
	Date       string `json:"date"`
}

// SaveCompanionMemory upserts the remembered background for a date.
func (db *DB) SaveCompanionMemory(background, date string) error {
	_, err := db.Exec(`
		INSERT INTO companion_memory (id, background, date) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET background = excluded.background, date = excluded.date
	`, background, date)
	if err != nil {
		return fmt.Errorf("save companion memory: %w", err)
	}
	return nil
}

// GetCompanionMemory returns the remembered background for the given date,
// or nil when nothing is stored or the stored date is stale.
func (db *DB) GetCompanionMemory(date string) (*CompanionMemory, error) {
	var m CompanionMemory
	err := db.QueryRow(`
		SELECT background, date FROM companion_memory WHERE id = 1
	`).Scan(&m.Background, &m.Date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get companion memory: %w", err)
	}
	if m.Date != date {
		return nil, nil
	}
	return &m, nil
}
