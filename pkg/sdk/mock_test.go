package jobmatch

import (
	"context"
	"sync"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
	listinguc "github.com/kailas-cloud/jobmatch/internal/usecase/listing"
)

// --- matchUseCase mock ---

type mockMatchUC struct {
	matchFn func(ctx context.Context, q seeker.Query, limit int) ([]dommatch.ScoredMatch, error)
}

func (m *mockMatchUC) Match(ctx context.Context, q seeker.Query, limit int) ([]dommatch.ScoredMatch, error) {
	return m.matchFn(ctx, q, limit)
}

// --- listingUseCase mock ---

type mockListingUC struct {
	createFn func(ctx context.Context, in listinguc.Input) (domlisting.Listing, error)
	getFn    func(ctx context.Context, id string) (domlisting.Listing, error)
	listFn   func(ctx context.Context) ([]domlisting.Listing, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockListingUC) Create(ctx context.Context, in listinguc.Input) (domlisting.Listing, error) {
	return m.createFn(ctx, in)
}

func (m *mockListingUC) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	return m.getFn(ctx, id)
}

func (m *mockListingUC) List(ctx context.Context) ([]domlisting.Listing, error) {
	return m.listFn(ctx)
}

func (m *mockListingUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- in-memory listing repository ---

type memRepo struct {
	mu    sync.Mutex
	items []domlisting.Listing
}

func (r *memRepo) Create(_ context.Context, l domlisting.Listing) (domlisting.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l = l.WithSeq(int64(len(r.items) + 1))
	r.items = append(r.items, l)
	return l, nil
}

func (r *memRepo) Get(_ context.Context, id string) (domlisting.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if l.ID() == id {
			return l, nil
		}
	}
	return domlisting.Listing{}, domain.ErrNotFound
}

func (r *memRepo) FetchListings(context.Context) ([]domlisting.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domlisting.Listing(nil), r.items...), nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.items {
		if l.ID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
