package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	"github.com/kailas-cloud/jobmatch/internal/logger"
)

// Input carries the caller-supplied fields of a new listing.
type Input struct {
	Company       string
	Title         string
	MinExperience int
	Skills        string
	Location      string
}

// Service handles listing intake and lookup.
type Service struct {
	repo  Repository
	newID func() string
}

// New creates a listing service. IDs are random UUIDs.
func New(repo Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

// Create validates and stores a new listing.
func (s *Service) Create(ctx context.Context, in Input) (domlisting.Listing, error) {
	l, err := domlisting.New(s.newID(), in.Company, in.Title, in.MinExperience, in.Skills, in.Location)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("validate listing: %w: %w", domain.ErrInvalidListing, err)
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("create listing: %w", err)
	}

	logger.FromContext(ctx).Info("listing created",
		zap.String("listing_id", created.ID()),
		zap.Int64("seq", created.Seq()),
		zap.String("company", created.Company()),
	)
	return created, nil
}

// Get retrieves a listing by ID.
func (s *Service) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	if id == "" {
		return domlisting.Listing{}, fmt.Errorf("%w: listing ID is required", domain.ErrInvalidRequest)
	}
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// List returns every listing in store order.
func (s *Service) List(ctx context.Context) ([]domlisting.Listing, error) {
	ls, err := s.repo.FetchListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return ls, nil
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: listing ID is required", domain.ErrInvalidRequest)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}
