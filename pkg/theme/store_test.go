package theme_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/theme"
)

type failingStorage struct {
	kv.Storage
}

func (failingStorage) Set(context.Context, string, []byte) error { return errors.New("read-only") }

func open(t *testing.T, storage kv.Storage) *theme.Store {
	t.Helper()
	s, err := theme.Open(context.Background(), storage, theme.WithLogger(logger.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    theme.Theme
		wantErr bool
	}{
		{"light", theme.Light, false},
		{"dark", theme.Dark, false},
		{"Dark", "", true},
		{"", "", true},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := theme.Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, theme.ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		payload string
		want    theme.Theme
	}{
		{"nothing stored", "", theme.Dark},
		{"persisted light", `{"state":{"theme":"light"},"version":0}`, theme.Light},
		{"unknown value", `{"state":{"theme":"sepia"},"version":0}`, theme.Dark},
		{"corrupt payload", `[`, theme.Dark},
		{"other version", `{"state":{"theme":"light"},"version":3}`, theme.Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := kv.NewMemoryStorage()
			if tt.payload != "" {
				require.NoError(t, storage.Set(ctx, theme.StorageKey, []byte(tt.payload)))
			}
			assert.Equal(t, tt.want, open(t, storage).Current())
		})
	}
}

func TestStore_ToggleAndSet(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemoryStorage()
	s := open(t, storage)

	got, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, got)
	assert.Equal(t, theme.Light, open(t, storage).Current())

	require.NoError(t, s.Set(ctx, theme.Dark))
	raw, err := storage.Get(ctx, theme.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"theme":"dark"},"version":0}`, string(raw))

	assert.ErrorIs(t, s.Set(ctx, "blue"), theme.ErrInvalidTheme)
	assert.Equal(t, theme.Dark, s.Current())
}

func TestStore_PersistFailureKeepsTheme(t *testing.T) {
	s := open(t, failingStorage{Storage: kv.NewMemoryStorage()})

	got, err := s.Toggle(context.Background())
	assert.ErrorIs(t, err, theme.ErrPersistTheme)
	assert.Equal(t, theme.Dark, got)
	assert.Equal(t, theme.Dark, s.Current())
}

func TestStore_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage := kv.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, theme.StorageKey, []byte(`{"state":{"theme":"light"},"version":0}`)))
	s := open(t, storage)

	sub := s.Subscribe(ctx)
	next := func() theme.Theme {
		select {
		case msg := <-sub.Receive(ctx):
			return msg.Data
		case <-time.After(time.Second):
			t.Fatal("no theme update")
			return ""
		}
	}

	assert.Equal(t, theme.Light, next(), "restored value is published first")

	_, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, next())
}
