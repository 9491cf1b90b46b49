package repository

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type memorySnapshotRepository struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewMemorySnapshot keeps encoded snapshots in process memory.
func NewMemorySnapshot() port.CartSnapshotRepository {
	return &memorySnapshotRepository{
		payloads: make(map[string][]byte),
	}
}

func (r *memorySnapshotRepository) GetSnapshot(_ context.Context, key string) ([]domain.CartItem, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	r.mu.RLock()
	payload, ok := r.payloads[key]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	return decodeSnapshot(payload)
}

func (r *memorySnapshotRepository) SaveSnapshot(_ context.Context, key string, items []domain.CartItem) error {
	if err := validateKey(key); err != nil {
		return err
	}

	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.payloads[key] = payload
	r.mu.Unlock()

	return nil
}

func (r *memorySnapshotRepository) DeleteSnapshot(_ context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.payloads[key]
	delete(r.payloads, key)

	return ok, nil
}
