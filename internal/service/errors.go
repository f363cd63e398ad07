package service

import "errors"

// Error kinds returned by the record service. Callers match them with errors.Is;
// mapping to transport status codes belongs to the HTTP layer.
var (
	ErrInvalidFilterInput     = errors.New("invalid filter input")
	ErrInvalidPaginationInput = errors.New("invalid pagination input")
	ErrInvalidSortInput       = errors.New("invalid sort input")
	ErrNotFound               = errors.New("record not found")
	ErrPersistence            = errors.New("persistence error")
	ErrAggregation            = errors.New("aggregation error")
)
