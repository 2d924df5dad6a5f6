package listing

import (
	"context"

	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

// Repository defines the storage contract for listings.
type Repository interface {
	Create(ctx context.Context, l domlisting.Listing) (domlisting.Listing, error)
	Get(ctx context.Context, id string) (domlisting.Listing, error)
	FetchListings(ctx context.Context) ([]domlisting.Listing, error)
	Delete(ctx context.Context, id string) error
}
