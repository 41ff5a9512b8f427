package catalog

import "errors"

var (
	ErrInvalidDate    = errors.New("catalog: invalid release date, want dd.mm.yyyy")
	ErrInvalidSortKey = errors.New("catalog: invalid sort key")
	ErrLoadCatalog    = errors.New("catalog: failed to load catalog")
)
