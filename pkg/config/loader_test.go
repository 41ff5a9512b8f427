package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/config"
)

type apiConfig struct {
	URL     string `env:"TEST_API_URL" envDefault:"http://localhost:8000"`
	Retries int    `env:"TEST_API_RETRIES" envDefault:"2"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Driver string `env:"TEST_FILE_DRIVER"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8000", cfg.URL)
		assert.Equal(t, 2, cfg.Retries)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_URL", "http://api.test")
		t.Setenv("TEST_API_RETRIES", "5")

		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://api.test", cfg.URL)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_API_URL", "http://first")
		var first apiConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_API_URL", "http://second")
		var second apiConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "http://first", second.URL)

		config.Reset()
		var third apiConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "http://second", third.URL)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_REQUIRED_VALUE")
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *apiConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_FILE_DRIVER")
		t.Cleanup(func() { os.Unsetenv("TEST_FILE_DRIVER") })

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_DRIVER=sqlite\n"), 0o600))
		require.NoError(t, config.LoadEnv(path))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "sqlite", cfg.Driver)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
