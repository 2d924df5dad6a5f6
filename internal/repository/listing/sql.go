package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/domain"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

// querier is the consumer interface for listings on a SQL backend (ISP).
type querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (db.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) db.Row
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS listings (
	id             TEXT PRIMARY KEY,
	seq            BIGSERIAL NOT NULL UNIQUE,
	company        TEXT NOT NULL,
	title          TEXT NOT NULL,
	min_experience INTEGER NOT NULL DEFAULT 0,
	skills         TEXT NOT NULL DEFAULT '',
	location       TEXT NOT NULL DEFAULT '',
	created_at     BIGINT NOT NULL
)`

const (
	insertSQL = `INSERT INTO listings (id, company, title, min_experience, skills, location, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING seq`

	selectColumns = `SELECT id, seq, company, title, min_experience, skills, location, created_at FROM listings`

	getSQL    = selectColumns + ` WHERE id = $1`
	listSQL   = selectColumns + ` ORDER BY seq`
	deleteSQL = `DELETE FROM listings WHERE id = $1`
)

// SQLRepo implements usecase/listing.Repository on PostgreSQL.
// Insertion order comes from the BIGSERIAL seq column.
type SQLRepo struct {
	q querier
}

// NewSQL creates a SQL-backed listing repository.
func NewSQL(q querier) *SQLRepo {
	return &SQLRepo{q: q}
}

// EnsureSchema creates the listings table when missing.
func (r *SQLRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return &db.Error{Op: db.OpMigrate, Err: err}
	}
	return nil
}

// Create inserts the listing and returns it with its assigned sequence.
func (r *SQLRepo) Create(ctx context.Context, l domlisting.Listing) (domlisting.Listing, error) {
	var seq int64
	err := r.q.QueryRow(ctx, insertSQL,
		l.ID(), l.Company(), l.Title(), l.MinExperience(), l.Skills(), l.Location(), l.CreatedAt(),
	).Scan(&seq)
	if err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return domlisting.Listing{}, fmt.Errorf("listing %s: %w", l.ID(), domain.ErrAlreadyExists)
		}
		return domlisting.Listing{}, sqlUnavailable(db.OpInsert, err)
	}
	return l.WithSeq(seq), nil
}

// Get retrieves a listing by ID.
func (r *SQLRepo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	l, err := scanListing(r.q.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domlisting.Listing{}, domain.ErrNotFound
		}
		return domlisting.Listing{}, sqlUnavailable(db.OpSelect, err)
	}
	return l, nil
}

// FetchListings returns every stored listing ordered by insertion sequence.
func (r *SQLRepo) FetchListings(ctx context.Context) ([]domlisting.Listing, error) {
	rows, err := r.q.Query(ctx, listSQL)
	if err != nil {
		return nil, sqlUnavailable(db.OpSelect, err)
	}
	defer rows.Close()

	listings := []domlisting.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, sqlUnavailable(db.OpSelect, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlUnavailable(db.OpSelect, err)
	}
	return listings, nil
}

// Delete removes a listing.
func (r *SQLRepo) Delete(ctx context.Context, id string) error {
	n, err := r.q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return sqlUnavailable(db.OpDelete, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (domlisting.Listing, error) {
	var (
		id, company, title, skills, location string
		seq, createdAt                       int64
		minExp                               int
	)
	if err := s.Scan(&id, &seq, &company, &title, &minExp, &skills, &location, &createdAt); err != nil {
		return domlisting.Listing{}, err //nolint:wrapcheck // callers classify and wrap
	}
	return domlisting.Reconstruct(id, seq, company, title, minExp, skills, location, createdAt), nil
}

func sqlUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, &db.Error{Op: op, Err: err})
}
