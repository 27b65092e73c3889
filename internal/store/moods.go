package store

import (
	"fmt"
)

// RecordMood appends a mood to the given day's history. Duplicate moods
// for the same day are suppressed; entries are never removed.
func (db *DB) RecordMood(date, moodID string) error {
	_, err := db.Exec(`
		INSERT INTO mood_history (date, mood_id) VALUES (?, ?)
		ON CONFLICT (date, mood_id) DO NOTHING
	`, date, moodID)
	if err != nil {
		return fmt.Errorf("record mood: %w", err)
	}
	return nil
}

// MoodsForDate returns the mood ids recorded on a date, in insertion order.
func (db *DB) MoodsForDate(date string) ([]string, error) {
	rows, err := db.Query(`
		SELECT mood_id FROM mood_history WHERE date = ? ORDER BY id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("moods for date: %w", err)
	}
	defer rows.Close()

	var moods []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		moods = append(moods, id)
	}
	return moods, rows.Err()
}

// MoodHistory returns the full date → mood-ids mapping.
func (db *DB) MoodHistory() (map[string][]string, error) {
	rows, err := db.Query(`SELECT date, mood_id FROM mood_history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("mood history: %w", err)
	}
	defer rows.Close()

	history := make(map[string][]string)
	for rows.Next() {
		var date, id string
		if err := rows.Scan(&date, &id); err != nil {
			return nil, fmt.Errorf("scan mood history: %w", err)
		}
		history[date] = append(history[date], id)
	}
	return history, rows.Err()
}
