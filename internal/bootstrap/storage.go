// Package bootstrap opens the listing store selected by configuration.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/jobmatch/internal/config"
	"github.com/kailas-cloud/jobmatch/internal/db"
	"github.com/kailas-cloud/jobmatch/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/jobmatch/internal/db/redis"
	listingrepo "github.com/kailas-cloud/jobmatch/internal/repository/listing"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	listinguc "github.com/kailas-cloud/jobmatch/internal/usecase/listing"
)

// DefaultReadinessTimeout bounds the wait for the store on startup.
const DefaultReadinessTimeout = 10 * time.Second

// StoreConfig selects and configures a listing store driver.
type StoreConfig struct {
	Driver           string // redis or postgres
	Addrs            []string
	Password         string
	KeyPrefix        string
	Postgres         postgres.Config
	ReadinessTimeout time.Duration
}

// Storage is an opened listing store.
type Storage struct {
	Driver   string
	Listings listinguc.Repository
	Pinger   healthuc.Pinger
	close    func()
}

// Close releases the underlying connections.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// FromConfig maps the service configuration onto a StoreConfig.
func FromConfig(cfg config.Config) StoreConfig {
	d := cfg.Database
	return StoreConfig{
		Driver:    d.Driver,
		Addrs:     d.Addrs,
		Password:  d.Password,
		KeyPrefix: cfg.Storage.KeyPrefix,
		Postgres: postgres.Config{
			DSN:             d.DSN,
			MaxConns:        d.Pool.MaxConns,
			MinConns:        d.Pool.MinConns,
			MaxConnLifetime: time.Duration(d.Pool.MaxConnLifetimeSec) * time.Second,
			MaxConnIdleTime: time.Duration(d.Pool.MaxConnIdleTimeSec) * time.Second,
		},
		ReadinessTimeout: time.Duration(d.ReadinessTimeout) * time.Second,
	}
}

// Open connects to the configured store and waits until it answers.
func Open(ctx context.Context, cfg StoreConfig) (*Storage, error) {
	timeout := cfg.ReadinessTimeout
	if timeout <= 0 {
		timeout = DefaultReadinessTimeout
	}

	switch cfg.Driver {
	case "", config.DriverRedis:
		return openRedis(ctx, cfg, timeout)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, timeout)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openRedis(ctx context.Context, cfg StoreConfig, timeout time.Duration) (*Storage, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("redis store: %w", err)
	}
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("redis not ready: %w", err)
	}

	return &Storage{
		Driver:   config.DriverRedis,
		Listings: listingrepo.New(store, cfg.KeyPrefix),
		Pinger:   store,
		close:    store.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg StoreConfig, timeout time.Duration) (*Storage, error) {
	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	return openSQL(ctx, pool, timeout)
}

// openSQL waits for a relational store, then creates the listings schema.
// The store is closed on failure.
func openSQL(ctx context.Context, store db.SQL, timeout time.Duration) (*Storage, error) {
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("postgres not ready: %w", err)
	}

	schemaCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	repo := listingrepo.NewSQL(store)
	if err := repo.EnsureSchema(schemaCtx); err != nil {
		store.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}

	return &Storage{
		Driver:   config.DriverPostgres,
		Listings: repo,
		Pinger:   store,
		close:    store.Close,
	}, nil
}
