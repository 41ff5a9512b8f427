package pg_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/pg"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	a := m.Called(sql, args)
	return pgconn.NewCommandTag(a.String(0)), a.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.Called(sql, args).Get(0).(pgx.Row)
}

type row struct {
	payload []byte
	err     error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("get found", func(t *testing.T) {
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, []any{"cart-storage"}).Return(row{payload: []byte(`{}`)})

		got, err := pg.NewStorage(db).Get(ctx, "cart-storage")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(got))
	})

	t.Run("get missing", func(t *testing.T) {
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, []any{"cart-storage"}).Return(row{err: pgx.ErrNoRows})

		_, err := pg.NewStorage(db).Get(ctx, "cart-storage")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("get failure", func(t *testing.T) {
		boom := errors.New("conn reset")
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, []any{"cart-storage"}).Return(row{err: boom})

		_, err := pg.NewStorage(db).Get(ctx, "cart-storage")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set upserts", func(t *testing.T) {
		db := &mockDB{}
		db.On("Exec", mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "ON CONFLICT")
		}), []any{"theme-storage", []byte(`"dark"`)}).Return("INSERT 0 1", nil)

		require.NoError(t, pg.NewStorage(db).Set(ctx, "theme-storage", []byte(`"dark"`)))
		db.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		db := &mockDB{}
		db.On("Exec", mock.Anything, []any{"user-storage"}).Return("DELETE 0", nil)

		require.NoError(t, pg.NewStorage(db).Delete(ctx, "user-storage"))
		db.AssertExpectations(t)
	})

	t.Run("empty key", func(t *testing.T) {
		s := pg.NewStorage(&mockDB{})
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, kv.ErrInvalidKey)
		assert.ErrorIs(t, s.Set(ctx, "", nil), kv.ErrInvalidKey)
		assert.ErrorIs(t, s.Delete(ctx, ""), kv.ErrInvalidKey)
	})
}

func TestConnect_EmptyConnectionString(t *testing.T) {
	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}

// TestStorage_Integration runs against a live database when STOREFRONT_TEST_PG_URL is set.
func TestStorage_Integration(t *testing.T) {
	url := os.Getenv("STOREFRONT_TEST_PG_URL")
	if url == "" {
		t.Skip("STOREFRONT_TEST_PG_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{ConnectionString: url, RetryAttempts: 1, RetryInterval: time.Second}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, pg.Migrate(ctx, pool, cfg, slog.Default()))
	require.NoError(t, pg.Healthcheck(pool)(ctx))

	s := pg.NewStorage(pool)
	require.NoError(t, s.Set(ctx, "cart-storage", []byte(`{"v":1}`)))
	require.NoError(t, s.Set(ctx, "cart-storage", []byte(`{"v":2}`)))
	got, err := s.Get(ctx, "cart-storage")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))

	require.NoError(t, s.Delete(ctx, "cart-storage"))
	_, err = s.Get(ctx, "cart-storage")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
