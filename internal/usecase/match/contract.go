package match

import (
	"context"

	"github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

// ListingFetcher supplies the snapshot of listings to rank, in store order.
type ListingFetcher interface {
	FetchListings(ctx context.Context) ([]listing.Listing, error)
}
