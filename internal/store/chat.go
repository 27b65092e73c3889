package store

import (
	"database/sql"
	"fmt"
	"time"
)

// ChatMessage is one turn in the companion chat log. Pata turns created
// for a streamed reply carry a generation id; chunks are appended to the
// turn that owns the id, never to "whatever is last in the log".
type ChatMessage struct {
	ID           int64  `json:"id"`
	Sender       string `json:"from"`
	Message      string `json:"message"`
	GenerationID string `json:"-"`
	CreatedAt    int64  `json:"-"`
}

// AppendChatMessage adds a completed turn to the log.
func (db *DB) AppendChatMessage(sender, message string) (*ChatMessage, error) {
	now := time.Now().UnixMilli()
	result, err := db.Exec(`
		INSERT INTO chat_messages (sender, message, created_at)
		VALUES (?, ?, ?)
	`, sender, message, now)
	if err != nil {
		return nil, fmt.Errorf("append chat message: %w", err)
	}
	id, _ := result.LastInsertId()
	return &ChatMessage{ID: id, Sender: sender, Message: message, CreatedAt: now}, nil
}

// BeginPataReply creates an empty pata turn owned by generationID.
func (db *DB) BeginPataReply(generationID string) (*ChatMessage, error) {
	now := time.Now().UnixMilli()
	result, err := db.Exec(`
		INSERT INTO chat_messages (sender, message, generation_id, created_at)
		VALUES ('pata', '', ?, ?)
	`, generationID, now)
	if err != nil {
		return nil, fmt.Errorf("begin pata reply: %w", err)
	}
	id, _ := result.LastInsertId()
	return &ChatMessage{ID: id, Sender: AuthorPata, GenerationID: generationID, CreatedAt: now}, nil
}

// AppendReplyChunk appends streamed text to the turn owned by generationID.
// A chunk for an unknown generation is dropped silently: the reply it
// belonged to was superseded.
func (db *DB) AppendReplyChunk(generationID, chunk string) error {
	_, err := db.Exec(`
		UPDATE chat_messages SET message = message || ?
		WHERE generation_id = ?
	`, chunk, generationID)
	if err != nil {
		return fmt.Errorf("append reply chunk: %w", err)
	}
	return nil
}

// SetReplyContent replaces the content of the turn owned by generationID.
// Used for the static fallback when the provider fails or returns nothing.
func (db *DB) SetReplyContent(generationID, content string) error {
	_, err := db.Exec(`
		UPDATE chat_messages SET message = ? WHERE generation_id = ?
	`, content, generationID)
	if err != nil {
		return fmt.Errorf("set reply content: %w", err)
	}
	return nil
}

// GetChatMessage returns a turn by id, or nil if none exists.
func (db *DB) GetChatMessage(id int64) (*ChatMessage, error) {
	var m ChatMessage
	var gen sql.NullString
	err := db.QueryRow(`
		SELECT id, sender, message, generation_id, created_at
		FROM chat_messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Sender, &m.Message, &gen, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat message: %w", err)
	}
	m.GenerationID = gen.String
	return &m, nil
}

// ListChatMessages returns the full log in order.
func (db *DB) ListChatMessages() ([]ChatMessage, error) {
	rows, err := db.Query(`
		SELECT id, sender, message, generation_id, created_at
		FROM chat_messages ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []ChatMessage
	for rows.Next() {
		var m ChatMessage
		var gen sql.NullString
		if err := rows.Scan(&m.ID, &m.Sender, &m.Message, &gen, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		m.GenerationID = gen.String
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
