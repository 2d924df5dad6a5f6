package jobmatch

import (
	"context"
	"fmt"
	"time"

	listinguc "github.com/kailas-cloud/jobmatch/internal/usecase/listing"
)

// ListingService manages stored listings.
type ListingService struct {
	svc listingUseCase
	obs *observer
}

// Create validates and stores a listing.
func (s *ListingService) Create(ctx context.Context, in ListingInput) (_ Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opListingCreate, start, err) }()

	l, err := s.svc.Create(ctx, listinguc.Input{
		Company:       in.Company,
		Title:         in.Title,
		MinExperience: in.MinExperience,
		Skills:        in.Skills,
		Location:      in.Location,
	})
	if err != nil {
		return Listing{}, fmt.Errorf("create listing: %w", err)
	}
	return listingFromDomain(l), nil
}

// Get returns a listing by ID.
func (s *ListingService) Get(ctx context.Context, id string) (_ Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opListingGet, start, err) }()

	l, err := s.svc.Get(ctx, id)
	if err != nil {
		return Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return listingFromDomain(l), nil
}

// List returns every listing in insertion order.
func (s *ListingService) List(ctx context.Context) (_ []Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe(opListingList, start, err) }()

	ls, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	out := make([]Listing, len(ls))
	for i, l := range ls {
		out[i] = listingFromDomain(l)
	}
	return out, nil
}

// Delete removes a listing.
func (s *ListingService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe(opListingDelete, start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}
