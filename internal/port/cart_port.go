package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// CartSnapshotRepository is the durable key-value store shared by the cart
// store and the checkout controller. Writes are last-write-wins.
type CartSnapshotRepository interface {
	// GetSnapshot returns domain.ErrSnapshotNotFound for an absent key and an
	// error wrapping domain.ErrSnapshotCorrupt for an undecodable payload.
	GetSnapshot(ctx context.Context, key string) ([]domain.CartItem, error)
	SaveSnapshot(ctx context.Context, key string, items []domain.CartItem) error
	DeleteSnapshot(ctx context.Context, key string) (bool, error)
}
