package sqlite

import "errors"

var (
	ErrOpenDatabase  = errors.New("sqlite: failed to open database")
	ErrCreateSchema  = errors.New("sqlite: failed to create schema")
	ErrEmptyFilePath = errors.New("sqlite: empty database path")
)
