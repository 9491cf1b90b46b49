package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
	snapshot_key TEXT PRIMARY KEY,
	payload      TEXT NOT NULL,
	updated_at   TIMESTAMP NOT NULL
)`

type sqliteSnapshotRepository struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext: %w", err)
	}

	return db, nil
}

func NewSQLiteSnapshot(ctx context.Context, db *sql.DB) (port.CartSnapshotRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &sqliteSnapshotRepository{
		db:  db,
		now: time.Now,
	}, nil
}

func (r *sqliteSnapshotRepository) GetSnapshot(ctx context.Context, key string) ([]domain.CartItem, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_snapshots WHERE snapshot_key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.QueryRowContext: %w", err)
	}

	return decodeSnapshot([]byte(payload))
}

func (r *sqliteSnapshotRepository) SaveSnapshot(ctx context.Context, key string, items []domain.CartItem) error {
	if err := validateKey(key); err != nil {
		return err
	}

	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_snapshots (snapshot_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (snapshot_key) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload), r.now().UTC())
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (r *sqliteSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM cart_snapshots WHERE snapshot_key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected: %w", err)
	}

	return rowsAffected > 0, nil
}
