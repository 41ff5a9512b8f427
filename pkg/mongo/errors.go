package mongo

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("mongo: empty connection URL, use MONGODB_URL env var")
	ErrConnect            = errors.New("mongo: failed to connect")
	ErrHealthcheckFailed  = errors.New("mongo: healthcheck failed")
)
