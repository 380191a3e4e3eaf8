package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/xavierca1/leadflow/internal/store"
)

// SQLiteStore keeps the snapshot as a single key/value row.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("migrate snapshot table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (store.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, store.StorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return store.State{}, ErrNoSnapshot
	}
	if err != nil {
		return store.State{}, fmt.Errorf("read snapshot: %w", err)
	}
	var st store.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return store.State{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return st, nil
}

func (s *SQLiteStore) Save(ctx context.Context, st store.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		store.StorageKey, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
