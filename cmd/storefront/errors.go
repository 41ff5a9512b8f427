package main

import "errors"

var (
	ErrOpenStorage     = errors.New("failed to open storage")
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnhealthy       = errors.New("storefront is unhealthy")
)
