package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/kv"
)

// storageContract runs the behaviour every Storage implementation must share.
func storageContract(t *testing.T, s kv.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "absent-key")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "cart-storage", []byte(`{"a":1}`)))
		got, err := s.Get(ctx, "cart-storage")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "theme-storage", []byte(`"light"`)))
		require.NoError(t, s.Set(ctx, "theme-storage", []byte(`"dark"`)))
		got, err := s.Get(ctx, "theme-storage")
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "user-storage", []byte(`null`)))
		require.NoError(t, s.Delete(ctx, "user-storage"))
		_, err := s.Get(ctx, "user-storage")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("delete missing key", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "never-stored"))
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, kv.ErrInvalidKey)
		assert.ErrorIs(t, s.Set(ctx, "", []byte("x")), kv.ErrInvalidKey)
	})
}

func TestMemoryStorage(t *testing.T) {
	storageContract(t, kv.NewMemoryStorage())

	t.Run("returned payload is a copy", func(t *testing.T) {
		s := kv.NewMemoryStorage()
		ctx := context.Background()
		payload := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", payload))
		payload[0] = 'x'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
		got[1] = 'y'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
		assert.Equal(t, 1, s.Len())
	})
}

func TestFileStorage(t *testing.T) {
	s, err := kv.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	storageContract(t, s)

	t.Run("survives reopen", func(t *testing.T) {
		dir := t.TempDir()
		ctx := context.Background()

		first, err := kv.NewFileStorage(dir)
		require.NoError(t, err)
		require.NoError(t, first.Set(ctx, "cart-storage", []byte(`{"n":2}`)))

		second, err := kv.NewFileStorage(dir)
		require.NoError(t, err)
		got, err := second.Get(ctx, "cart-storage")
		require.NoError(t, err)
		assert.JSONEq(t, `{"n":2}`, string(got))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		ctx := context.Background()
		for _, key := range []string{"../escape", "a/b", `a\b`, "..", ".hidden"} {
			assert.ErrorIs(t, s.Set(ctx, key, []byte("x")), kv.ErrInvalidKey, key)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, s.Set(ctx, "k", []byte("x")), context.Canceled)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := kv.NewFileStorage("")
		assert.ErrorIs(t, err, kv.ErrInvalidKey)
	})
}

func TestClose(t *testing.T) {
	assert.NoError(t, kv.Close(kv.NewMemoryStorage()))
}
