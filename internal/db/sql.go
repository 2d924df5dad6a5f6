package db

import (
	"context"
	"time"
)

// SQL is the relational database facade used by SQL-backed repositories.
type SQL interface {
	Pinger
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Rows iterates a query result. Close must be called when done.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Row is a single-row query result. Scan returns ErrKeyNotFound when no row matched.
type Row interface {
	Scan(dest ...any) error
}
