package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/roster/internal/db"
)

// SQLiteKVRepo implements KVRepo on the kv_entries table.
type SQLiteKVRepo struct {
	db db.DBTX
}

// NewSQLiteKVRepo creates a new SQLiteKVRepo.
func NewSQLiteKVRepo(conn db.DBTX) *SQLiteKVRepo {
	return &SQLiteKVRepo{db: conn}
}

func (r *SQLiteKVRepo) Get(ctx context.Context, key string) (*KVEntry, error) {
	query := `SELECT key, value, codec, updated_at FROM kv_entries WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var e KVEntry
	var updatedAtStr string
	if err := row.Scan(&e.Key, &e.Value, &e.Codec, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("kv entry %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning kv entry: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	e.UpdatedAt = updatedAt
	return &e, nil
}

// Put inserts or replaces the entry. UpdatedAt is stamped when zero.
func (r *SQLiteKVRepo) Put(ctx context.Context, e *KVEntry) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = nowUTC()
	}
	query := `INSERT OR REPLACE INTO kv_entries (key, value, codec, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.Key,
		e.Value,
		e.Codec,
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting kv entry: %w", err)
	}
	return nil
}
