package health

import "context"

// Pinger checks availability of a backing component (database, cache).
type Pinger interface {
	Ping(ctx context.Context) error
}
