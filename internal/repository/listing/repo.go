package listing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

// store is the consumer interface for listings on a key-value backend (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo implements usecase/listing.Repository on Redis/Valkey hashes.
//
// Layout: one hash per listing at {prefix}listing:{id}; the insertion
// sequence counter lives at {prefix}listing_seq, outside the listing key space.
type Repo struct {
	store  store
	prefix string
}

// New creates a listing repository. An empty prefix uses domain.DefaultKeyPrefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = domain.DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// Create assigns the next sequence number and stores the listing.
func (r *Repo) Create(ctx context.Context, l domlisting.Listing) (domlisting.Listing, error) {
	key := r.listingKey(l.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return domlisting.Listing{}, unavailable("check exists", err)
	}
	if exists {
		return domlisting.Listing{}, fmt.Errorf("listing %s: %w", l.ID(), domain.ErrAlreadyExists)
	}

	seq, err := r.store.Incr(ctx, r.seqKey())
	if err != nil {
		return domlisting.Listing{}, unavailable("next seq", err)
	}
	l = l.WithSeq(seq)

	if err := r.store.HSet(ctx, key, listingToHash(l)); err != nil {
		return domlisting.Listing{}, unavailable("hset listing "+l.ID(), err)
	}
	return l, nil
}

// Get retrieves a listing by ID.
func (r *Repo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	m, err := r.store.HGetAll(ctx, r.listingKey(id))
	if err != nil {
		return domlisting.Listing{}, unavailable("hgetall listing "+id, err)
	}
	if len(m) == 0 {
		return domlisting.Listing{}, domain.ErrNotFound
	}

	l, err := listingFromHash(m)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("parse listing %s: %w", id, err)
	}
	return l, nil
}

// FetchListings returns every stored listing ordered by insertion sequence.
func (r *Repo) FetchListings(ctx context.Context) ([]domlisting.Listing, error) {
	keys, err := r.store.Scan(ctx, r.listingKey("*"))
	if err != nil {
		return nil, unavailable("scan listings", err)
	}
	keys = dedupe(keys)
	if len(keys) == 0 {
		return []domlisting.Listing{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, unavailable("hgetall multi listings", err)
	}

	listings := make([]domlisting.Listing, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		l, err := listingFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse listing %s: %w", keys[i], err)
		}
		listings = append(listings, l)
	}

	sort.Slice(listings, func(i, j int) bool {
		if listings[i].Seq() != listings[j].Seq() {
			return listings[i].Seq() < listings[j].Seq()
		}
		return listings[i].ID() < listings[j].ID()
	})

	return listings, nil
}

// Delete removes a listing.
func (r *Repo) Delete(ctx context.Context, id string) error {
	existed, err := r.store.Del(ctx, r.listingKey(id))
	if err != nil {
		return unavailable("del listing "+id, err)
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) listingKey(id string) string {
	return r.prefix + "listing:" + id
}

func (r *Repo) seqKey() string {
	return r.prefix + "listing_seq"
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// unavailable marks a backend failure so the transport can answer 503.
func unavailable(op string, err error) error {
	if errors.Is(err, db.ErrKeyNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
