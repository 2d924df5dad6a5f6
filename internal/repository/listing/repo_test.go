package listing

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/jobmatch/internal/domain"
)

func TestCreate_AssignsSeqAndWritesHash(t *testing.T) {
	repo, ms := newTestRepo(t)

	var incrKey, hsetKey string
	var fields map[string]string
	ms.incrFn = func(_ context.Context, key string) (int64, error) {
		incrKey = key
		return 42, nil
	}
	ms.hsetFn = func(_ context.Context, key string, f map[string]string) error {
		hsetKey, fields = key, f
		return nil
	}

	got, err := repo.Create(context.Background(), testListing(t, "abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Seq() != 42 {
		t.Errorf("seq = %d, want 42", got.Seq())
	}
	if incrKey != "jobmatch:listing_seq" {
		t.Errorf("incr key = %q", incrKey)
	}
	if hsetKey != "jobmatch:listing:abc" {
		t.Errorf("hset key = %q", hsetKey)
	}
	if fields["seq"] != "42" || fields["company"] != "ShopRite" || fields["min_experience"] != "1" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.existsFn = func(context.Context, string) (bool, error) { return true, nil }
	ms.incrFn = func(context.Context, string) (int64, error) {
		t.Fatal("seq must not advance for a duplicate")
		return 0, nil
	}

	_, err := repo.Create(context.Background(), testListing(t, "abc"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_StoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	tests := []struct {
		name  string
		setup func(ms *mockStore)
	}{
		{"exists", func(ms *mockStore) {
			ms.existsFn = func(context.Context, string) (bool, error) { return false, boom }
		}},
		{"incr", func(ms *mockStore) {
			ms.incrFn = func(context.Context, string) (int64, error) { return 0, boom }
		}},
		{"hset", func(ms *mockStore) {
			ms.hsetFn = func(context.Context, string, map[string]string) error { return boom }
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, ms := newTestRepo(t)
			tc.setup(ms)

			_, err := repo.Create(context.Background(), testListing(t, "abc"))
			if !errors.Is(err, domain.ErrStoreUnavailable) || !errors.Is(err, boom) {
				t.Fatalf("expected ErrStoreUnavailable wrapping cause, got %v", err)
			}
		})
	}
}

func TestGet_Success(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "jobmatch:listing:abc" {
			t.Errorf("unexpected key %q", key)
		}
		return listingToHash(testListing(t, "abc").WithSeq(3)), nil
	}

	got, err := repo.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "abc" || got.Seq() != 3 || got.Title() != "Cashier" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_CorruptSeq(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(context.Context, string) (map[string]string, error) {
		return map[string]string{"id": "abc", "seq": "x"}, nil
	}

	if _, err := repo.Get(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for corrupt seq")
	}
}

func TestFetchListings_OrderedBySeq(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.scanFn = func(_ context.Context, pattern string) ([]string, error) {
		if pattern != "jobmatch:listing:*" {
			t.Errorf("unexpected pattern %q", pattern)
		}
		// SCAN may repeat keys
		return []string{"jobmatch:listing:c", "jobmatch:listing:a", "jobmatch:listing:b", "jobmatch:listing:a"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 3 {
			t.Errorf("expected deduped keys, got %v", keys)
		}
		return []map[string]string{
			listingToHash(testListing(t, "c").WithSeq(3)),
			listingToHash(testListing(t, "a").WithSeq(1)),
			{}, // deleted concurrently
		}, nil
	}

	got, err := repo.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, l := range got {
		ids = append(ids, l.ID())
	}
	if !reflect.DeepEqual(ids, []string{"a", "c"}) {
		t.Errorf("ids = %v, want [a c]", ids)
	}
}

func TestFetchListings_Empty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllMultiFn = func(context.Context, []string) ([]map[string]string, error) {
		t.Fatal("HGETALL must not run without keys")
		return nil, nil
	}

	got, err := repo.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFetchListings_ScanError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanFn = func(context.Context, string) ([]string, error) { return nil, errors.New("timeout") }

	_, err := repo.FetchListings(context.Background())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, ms := newTestRepo(t)

	var deleted string
	ms.delFn = func(_ context.Context, key string) (bool, error) {
		deleted = key
		return true, nil
	}
	if err := repo.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "jobmatch:listing:abc" {
		t.Errorf("deleted key = %q", deleted)
	}

	ms.delFn = func(context.Context, string) (bool, error) { return false, nil }
	if err := repo.Delete(context.Background(), "abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNew_DefaultPrefix(t *testing.T) {
	repo := New(&mockStore{}, "")
	if repo.listingKey("x") != domain.DefaultKeyPrefix+"listing:x" {
		t.Errorf("unexpected key %q", repo.listingKey("x"))
	}
	if repo.seqKey() != domain.DefaultKeyPrefix+"listing_seq" {
		t.Errorf("unexpected seq key %q", repo.seqKey())
	}
}

func TestRepo_RoundTrip(t *testing.T) {
	repo := New(newMemStore(), "test:")
	ctx := context.Background()

	for _, id := range []string{"z", "y", "x"} {
		if _, err := repo.Create(ctx, testListing(t, id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if err := repo.Delete(ctx, "y"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.FetchListings(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "z" || got[1].ID() != "x" {
		t.Fatalf("expected insertion order [z x], got %v", got)
	}

	l, err := repo.Get(ctx, "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := testListing(t, "x")
	if l.Company() != want.Company() || l.Skills() != want.Skills() || l.MinExperience() != 1 || l.Seq() != 3 {
		t.Errorf("round-trip mismatch: %+v", l)
	}
}

func TestListingFromHash_CoercesBadNumbers(t *testing.T) {
	l, err := listingFromHash(map[string]string{
		"id": "a", "seq": "1", "company": "C", "title": "T",
		"min_experience": "three", "created_at": "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.MinExperience() != 0 || l.CreatedAt() != 0 {
		t.Errorf("expected coercion to 0, got %d/%d", l.MinExperience(), l.CreatedAt())
	}

	neg, _ := listingFromHash(map[string]string{"id": "a", "seq": "1", "min_experience": "-4"})
	if neg.MinExperience() != 0 {
		t.Errorf("negative min experience must hydrate as 0, got %d", neg.MinExperience())
	}
}
