package store

import (
	"database/sql"
	"fmt"
	"time"
)

// User is a registered account. Passwords are stored as bcrypt hashes,
// never plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    int64
}

// CreateUser inserts a new user with the given bcrypt hash.
func (db *DB) CreateUser(username, passwordHash string) (*User, error) {
	now := time.Now().UnixMilli()
	result, err := db.Exec(`
		INSERT INTO users (username, password_hash, created_at)
		VALUES (?, ?, ?)
	`, username, passwordHash, now)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, _ := result.LastInsertId()
	return &User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: now}, nil
}

// GetUser returns a user by username, or nil if none exists.
func (db *DB) GetUser(username string) (*User, error) {
	var u User
	err := db.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM users WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CountUsers returns the number of registered users.
func (db *DB) CountUsers() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
