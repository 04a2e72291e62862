// Package storage - долговременное хранилище на SQLite: снимки состояния
// комнат (директива SAVE_STATE) и журнал принятых намерений для реплея.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// JournalEntry - одна запись журнала намерений.
type JournalEntry struct {
	ID         int64
	RoomCode   string
	UID        string
	IntentType string
	Payload    []byte
}

// SQLiteStore реализует engine.Store поверх одного файла SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Open открывает (или создает) базу по пути и накатывает схему.
// WAL позволяет читать журнал параллельно с записью; единственное
// соединение убирает SQLITE_BUSY у единственного писателя.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close закрывает соединение с базой.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSnapshot перезаписывает снимок состояния комнаты.
func (s *SQLiteStore) SaveSnapshot(roomCode string, state []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (room_code, state, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(room_code) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at`,
		roomCode, state)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot возвращает последний снимок комнаты, nil если его нет.
func (s *SQLiteStore) LoadSnapshot(roomCode string) ([]byte, error) {
	var state []byte
	err := s.db.QueryRow(
		`SELECT state FROM snapshots WHERE room_code = ?`, roomCode).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return state, nil
}

// AppendIntent дописывает принятое намерение в журнал комнаты.
func (s *SQLiteStore) AppendIntent(roomCode, uid, intentType string, payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO intent_journal (room_code, uid, intent_type, payload)
		VALUES (?, ?, ?, ?)`,
		roomCode, uid, intentType, payload)
	if err != nil {
		return fmt.Errorf("append intent: %w", err)
	}
	return nil
}

// ListIntents возвращает журнал комнаты в порядке применения.
func (s *SQLiteStore) ListIntents(roomCode string) ([]JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, room_code, uid, intent_type, payload
		FROM intent_journal
		WHERE room_code = ?
		ORDER BY id`, roomCode)
	if err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.RoomCode, &e.UID, &e.IntentType, &e.Payload); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
