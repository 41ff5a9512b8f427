// Package config loads typed configuration structs from the process
// environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached by its type name; later Load calls for the same type
// return the cached copy.
//
//	type StorageConfig struct {
//		Driver string `env:"STOREFRONT_STORAGE_DRIVER" envDefault:"file"`
//		Dir    string `env:"STOREFRONT_STORAGE_DIR" envDefault:".storefront"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Reset clears the cache, which is mostly useful in tests.
package config
