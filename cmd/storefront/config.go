package main

import (
	"time"

	"github.com/dmitrymomot/storefront/pkg/blob"
	"github.com/dmitrymomot/storefront/pkg/mongo"
	"github.com/dmitrymomot/storefront/pkg/pg"
	"github.com/dmitrymomot/storefront/pkg/redis"
)

// Storage drivers accepted by STOREFRONT_STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverPG     = "pg"
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
	DriverS3     = "s3"
)

// Config is the CLI configuration read from the environment.
type Config struct {
	APIURL        string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:8000"`
	APITimeout    time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"10s"`
	APIRetries    int           `env:"STOREFRONT_API_RETRIES" envDefault:"2"`
	APICacheTTL   time.Duration `env:"STOREFRONT_API_CACHE_TTL" envDefault:"5m"`
	StorageDriver string        `env:"STOREFRONT_STORAGE_DRIVER" envDefault:"file"`
	StorageDir    string        `env:"STOREFRONT_STORAGE_DIR" envDefault:".storefront"`
	SQLitePath    string        `env:"STOREFRONT_SQLITE_PATH" envDefault:".storefront/storefront.db"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`

	Redis    redis.Config
	Postgres pg.Config
	Mongo    mongo.Config
	S3       blob.Config
}
