package jobmatch

import "github.com/kailas-cloud/jobmatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrInvalidListing   = domain.ErrInvalidListing
	ErrInvalidRequest   = domain.ErrInvalidRequest
	ErrStoreUnavailable = domain.ErrStoreUnavailable
)
