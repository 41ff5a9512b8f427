package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL, use REDIS_URL env var")
	ErrParseConnString    = errors.New("redis: failed to parse connection string")
	ErrNotReady           = errors.New("redis: server did not become ready in time")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
)
