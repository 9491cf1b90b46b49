package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type postgresSnapshotRepository struct {
	q *db.Queries
}

func NewPostgresSnapshot(pool *pgxpool.Pool) port.CartSnapshotRepository {
	return &postgresSnapshotRepository{
		q: db.New(pool),
	}
}

// NewPostgresSnapshotWithTx runs every call inside the caller's transaction.
func NewPostgresSnapshotWithTx(tx pgx.Tx) port.CartSnapshotRepository {
	return &postgresSnapshotRepository{
		q: db.New(tx),
	}
}

func (r *postgresSnapshotRepository) GetSnapshot(ctx context.Context, key string) ([]domain.CartItem, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	payload, err := r.q.GetSnapshot(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetSnapshot: %w", err)
	}

	return decodeSnapshot(payload)
}

func (r *postgresSnapshotRepository) SaveSnapshot(ctx context.Context, key string, items []domain.CartItem) error {
	if err := validateKey(key); err != nil {
		return err
	}

	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	err = r.q.UpsertSnapshot(ctx, db.UpsertSnapshotParams{
		SnapshotKey: key,
		Payload:     payload,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertSnapshot: %w", err)
	}

	return nil
}

func (r *postgresSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	rowsAffected, err := r.q.DeleteSnapshot(ctx, key)
	if err != nil {
		return false, fmt.Errorf("q.DeleteSnapshot: %w", err)
	}

	return rowsAffected > 0, nil
}
