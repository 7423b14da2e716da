package repository

import (
	"context"
	"database/sql"
	"errors"
)

// KVRepo handles the local key-value store.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo { return &KVRepo{db: db} }

// Get returns nil, nil when key is absent.
func (r *KVRepo) Get(ctx context.Context, key string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM kv WHERE key = ?`, key)
	var e Entry
	if err := row.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *KVRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO kv(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=CURRENT_TIMESTAMP;
	`, key, value)
	return err
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
