package kvstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
)

// sqlStore keeps blobs in the kv table managed by internal/database.
type sqlStore struct {
	db *sql.DB
}

// New creates a Store backed by the given database handle.
func New(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error("Failed to read key", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		log.Error("Failed to write key", "key", key, "error", err)
	}
	return err
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		log.Error("Failed to remove key", "key", key, "error", err)
	}
	return err
}
