package domain

import "errors"

var (
	// ErrNotFound signals a missing listing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidListing signals a listing that fails validation.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrInvalidRequest signals a malformed match or intake request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrStoreUnavailable signals that the listing store could not be reached.
	ErrStoreUnavailable = errors.New("listing store unavailable")
	// ErrAlreadyExists signals a listing ID collision.
	ErrAlreadyExists = errors.New("already exists")
)
