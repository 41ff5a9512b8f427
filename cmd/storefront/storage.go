package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/storefront/pkg/blob"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mongo"
	"github.com/dmitrymomot/storefront/pkg/pg"
	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/pkg/sqlite"
)

// pgStorage owns the pool behind a pg.Storage.
type pgStorage struct {
	*pg.Storage
	close func()
}

func (s *pgStorage) Close() error {
	s.close()
	return nil
}

// probe reports whether the storage backend is reachable.
type probe func(context.Context) error

// healthKey is read by the fallback probe; it is never written.
const healthKey = "healthcheck"

// openStorage connects the configured backend and instruments it.
func openStorage(ctx context.Context, cfg Config, log *slog.Logger, reg prometheus.Registerer) (kv.Storage, probe, error) {
	storage, check, err := connectStorage(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrOpenStorage, cfg.StorageDriver, err)
	}

	metrics, err := kv.NewMetrics(reg)
	if err != nil {
		_ = kv.Close(storage)
		return nil, nil, err
	}

	if check == nil {
		check = readProbe(storage)
	}

	log.LogAttrs(ctx, slog.LevelDebug, "storage opened",
		logger.Component("storage"),
		slog.String("driver", cfg.StorageDriver),
	)
	return kv.Instrument(storage, cfg.StorageDriver, metrics), check, nil
}

// readProbe treats a successful read or a miss as healthy.
func readProbe(s kv.Storage) probe {
	return func(ctx context.Context) error {
		if _, err := s.Get(ctx, healthKey); err != nil && !errors.Is(err, kv.ErrNotFound) {
			return err
		}
		return nil
	}
}

func connectStorage(ctx context.Context, cfg Config, log *slog.Logger) (kv.Storage, probe, error) {
	switch cfg.StorageDriver {
	case DriverFile, "":
		s, err := kv.NewFileStorage(cfg.StorageDir)
		return s, nil, err
	case DriverMemory:
		return kv.NewMemoryStorage(), nil, nil
	case DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		return s, nil, err
	case DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStorage(client, cfg.Redis.KeyPrefix), redis.Healthcheck(client), nil
	case DriverPG:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return &pgStorage{Storage: pg.NewStorage(pool), close: pool.Close}, pg.Healthcheck(pool), nil
	case DriverMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewStorageFromClient(client, cfg.Mongo), mongo.Healthcheck(client), nil
	case DriverS3:
		s, err := blob.New(ctx, cfg.S3)
		return s, nil, err
	default:
		return nil, nil, ErrUnknownDriver
	}
}
