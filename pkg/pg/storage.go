package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/storefront/pkg/kv"
)

// DB is the subset of *pgxpool.Pool used by Storage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectRecord = `SELECT payload FROM storefront_records WHERE key = $1`
	upsertRecord = `INSERT INTO storefront_records (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	deleteRecord = `DELETE FROM storefront_records WHERE key = $1`
)

// Storage implements kv.Storage on the storefront_records table created by Migrate.
type Storage struct {
	db DB
}

func NewStorage(db DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kv.ErrInvalidKey
	}
	var payload []byte
	if err := s.db.QueryRow(ctx, selectRecord, key).Scan(&payload); err != nil {
		if IsNotFoundError(err) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("pg get %s: %w", key, err)
	}
	return payload, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return kv.ErrInvalidKey
	}
	if _, err := s.db.Exec(ctx, upsertRecord, key, value); err != nil {
		return fmt.Errorf("pg set %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kv.ErrInvalidKey
	}
	if _, err := s.db.Exec(ctx, deleteRecord, key); err != nil {
		return fmt.Errorf("pg delete %s: %w", key, err)
	}
	return nil
}
