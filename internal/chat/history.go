package chat

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openai/openai-go/v3"
	_ "modernc.org/sqlite"
)

// HistoryDB persists chat transcripts between sessions so a new process can
// resume a conversation.
type HistoryDB struct {
	db *sql.DB
}

// OpenHistoryDB opens (or creates) the SQLite history database at
// dir/history.db.
func OpenHistoryDB(dir string) (*HistoryDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS chat_messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session    TEXT NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &HistoryDB{db: db}, nil
}

// Append records one message. Only user and assistant roles are persisted;
// tool rounds are transient.
func (h *HistoryDB) Append(session, role, content string) error {
	if role != "user" && role != "assistant" {
		return nil
	}
	_, err := h.db.Exec(
		`INSERT INTO chat_messages (session, role, content) VALUES (?, ?, ?)`,
		session, role, content,
	)
	return err
}

// Load returns the stored transcript for a session in insertion order,
// converted to chat completion messages.
func (h *HistoryDB) Load(session string) ([]openai.ChatCompletionMessageParamUnion, error) {
	rows, err := h.db.Query(
		`SELECT role, content FROM chat_messages WHERE session = ? ORDER BY id`,
		session,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []openai.ChatCompletionMessageParamUnion
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, err
		}
		switch role {
		case "user":
			messages = append(messages, openai.UserMessage(content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(content))
		}
	}
	return messages, rows.Err()
}

// Clear deletes the stored transcript for a session.
func (h *HistoryDB) Clear(session string) error {
	_, err := h.db.Exec(`DELETE FROM chat_messages WHERE session = ?`, session)
	return err
}

// Close closes the history database.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}
