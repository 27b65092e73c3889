package store

import (
	"fmt"
	"time"
)

// Diary entry authors.
const (
	AuthorUser = "user"
	AuthorPata = "pata"
)

// DiaryEntry is a dated diary record. The id doubles as the creation
// timestamp (unix millis).
type DiaryEntry struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"` // "2006-01-02"
	Content string `json:"content"`
	Author  string `json:"author"`
}

// AddDiaryEntry inserts an entry for the given date and author.
// A second pata entry for the same date fails the per-day unique index;
// callers should check HasPataEntry first.
func (db *DB) AddDiaryEntry(date, content, author string) (*DiaryEntry, error) {
	id := time.Now().UnixMilli()
	for {
		_, err := db.Exec(`
			INSERT INTO diary_entries (id, date, content, author)
			VALUES (?, ?, ?, ?)
		`, id, date, content, author)
		if err == nil {
			break
		}
		if isUniqueViolation(err) {
			if author == AuthorPata {
				has, herr := db.HasPataEntry(date)
				if herr != nil {
					return nil, herr
				}
				if has {
					return nil, fmt.Errorf("insert diary entry: %w", err)
				}
			}
			// id collision within the same millisecond, nudge and retry.
			id++
			continue
		}
		return nil, fmt.Errorf("insert diary entry: %w", err)
	}
	return &DiaryEntry{ID: id, Date: date, Content: content, Author: author}, nil
}

// ListDiaryEntries returns all entries, newest date first, ties broken by id.
// author filters to 'user' or 'pata' entries when non-empty.
func (db *DB) ListDiaryEntries(author string) ([]DiaryEntry, error) {
	query := `
		SELECT id, date, content, author FROM diary_entries
		ORDER BY date DESC, id DESC
	`
	args := []any{}
	if author != "" {
		query = `
			SELECT id, date, content, author FROM diary_entries
			WHERE author = ? ORDER BY date DESC, id DESC
		`
		args = append(args, author)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer rows.Close()

	var entries []DiaryEntry
	for rows.Next() {
		var e DiaryEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Content, &e.Author); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DiaryEntriesForDate returns a date's entries, optionally filtered by author.
func (db *DB) DiaryEntriesForDate(date, author string) ([]DiaryEntry, error) {
	query := `SELECT id, date, content, author FROM diary_entries WHERE date = ? ORDER BY id`
	args := []any{date}
	if author != "" {
		query = `SELECT id, date, content, author FROM diary_entries WHERE date = ? AND author = ? ORDER BY id`
		args = append(args, author)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("diary entries for date: %w", err)
	}
	defer rows.Close()

	var entries []DiaryEntry
	for rows.Next() {
		var e DiaryEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Content, &e.Author); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HasPataEntry reports whether an auto-generated entry exists for a date.
func (db *DB) HasPataEntry(date string) (bool, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM diary_entries WHERE date = ? AND author = 'pata'
	`, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check pata entry: %w", err)
	}
	return n > 0, nil
}
