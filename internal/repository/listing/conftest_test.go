package listing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/jobmatch/internal/db"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

const testPrefix = "jobmatch:"

// mockStore implements the hash consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) (bool, error)
	existsFn       func(ctx context.Context, key string) (bool, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	incrFn         func(ctx context.Context, key string) (int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return true, nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) Incr(ctx context.Context, key string) (int64, error) {
	if m.incrFn != nil {
		return m.incrFn(ctx, key)
	}
	return 1, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, testPrefix), ms
}

// memStore is an in-memory hash store used for round-trip tests.
type memStore struct {
	hashes map[string]map[string]string
	seq    int64
}

func newMemStore() *memStore {
	return &memStore{hashes: map[string]map[string]string{}}
}

func (s *memStore) HSet(_ context.Context, key string, fields map[string]string) error {
	h := s.hashes[key]
	if h == nil {
		h = map[string]string{}
		s.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (s *memStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := map[string]string{}
	for k, v := range s.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i], _ = s.HGetAll(ctx, k)
	}
	return out, nil
}

func (s *memStore) Del(_ context.Context, key string) (bool, error) {
	_, ok := s.hashes[key]
	delete(s.hashes, key)
	return ok, nil
}

func (s *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.hashes[key]
	return ok, nil
}

// Scan supports only trailing-* patterns, which is all the repository issues.
func (s *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range s.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *memStore) Incr(_ context.Context, _ string) (int64, error) {
	s.seq++
	return s.seq, nil
}

// --- SQL fakes ---

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	rows    [][]any
	i       int
	err     error
	scanErr error
	closed  bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assign(dest, r.rows[r.i-1])
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

func assign(dest, values []any) error {
	if len(dest) != len(values) {
		return errors.New("column count mismatch")
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

type fakeQuerier struct {
	execFn     func(ctx context.Context, query string, args ...any) (int64, error)
	queryFn    func(ctx context.Context, query string, args ...any) (db.Rows, error)
	queryRowFn func(ctx context.Context, query string, args ...any) db.Row
}

func (q *fakeQuerier) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if q.execFn != nil {
		return q.execFn(ctx, query, args...)
	}
	return 0, nil
}

func (q *fakeQuerier) Query(ctx context.Context, query string, args ...any) (db.Rows, error) {
	if q.queryFn != nil {
		return q.queryFn(ctx, query, args...)
	}
	return &fakeRows{}, nil
}

func (q *fakeQuerier) QueryRow(ctx context.Context, query string, args ...any) db.Row {
	if q.queryRowFn != nil {
		return q.queryRowFn(ctx, query, args...)
	}
	return fakeRow{err: db.ErrKeyNotFound}
}

func testListing(t *testing.T, id string) domlisting.Listing {
	t.Helper()
	l, err := domlisting.New(id, "ShopRite", "Cashier", 1, "cash handling,customer service", "Johannesburg")
	if err != nil {
		t.Fatalf("domlisting.New: %v", err)
	}
	return l
}

func listingRow(id string, seq int64) []any {
	return []any{id, seq, "ShopRite", "Cashier", 1, "cash handling,customer service", "Johannesburg", int64(1700000000000)}
}
