package catalog

import "errors"

var (
	ErrEmptyCatalog        = errors.New("catalog must contain at least one entry")
	ErrInvalidEntry        = errors.New("invalid catalog entry")
	ErrDuplicatePriceID    = errors.New("duplicate price ID in catalog")
	ErrFailedToLoadCatalog = errors.New("failed to load catalog")
)
