package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:"

type redisSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshot stores snapshots as plain string values. A zero ttl keeps them forever.
func NewRedisSnapshot(client *redis.Client, ttl time.Duration) port.CartSnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisSnapshotRepository) GetSnapshot(ctx context.Context, key string) ([]domain.CartItem, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return decodeSnapshot(payload)
}

func (r *redisSnapshotRepository) SaveSnapshot(ctx context.Context, key string, items []domain.CartItem) error {
	if err := validateKey(key); err != nil {
		return err
	}

	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, redisKey(key), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (r *redisSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	deleted, err := r.client.Del(ctx, redisKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis delete failed: %w", err)
	}

	return deleted > 0, nil
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}
