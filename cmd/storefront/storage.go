package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func openSnapshotRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (port.CartSnapshotRepository, func() error, error) {
	noop := func() error { return nil }
	st := cfg.Storage

	switch st.Backend {
	case config.BackendMemory:
		return repository.NewMemorySnapshot(), noop, nil

	case config.BackendSQLite:
		db, err := repository.OpenSQLite(ctx, st.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		repo, err := repository.NewSQLiteSnapshot(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		logger.Debug("using sqlite storage", zap.String("path", st.SQLitePath))
		return repo, db.Close, nil

	case config.BackendRedis:
		ttl, err := cfg.RedisTTL()
		if err != nil {
			return nil, nil, err
		}

		client := redis.NewClient(&redis.Options{
			Addr:     st.Redis.Addr,
			Password: st.Redis.Password,
			DB:       st.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}

		logger.Debug("using redis storage", zap.String("addr", st.Redis.Addr), zap.Duration("ttl", ttl))
		return repository.NewRedisSnapshot(client, ttl), client.Close, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, st.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}

		logger.Debug("using postgres storage")
		return repository.NewPostgresSnapshot(pool), func() error {
			pool.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", st.Backend)
	}
}
