package jobmatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/jobmatch/internal/bootstrap"
	"github.com/kailas-cloud/jobmatch/internal/db/postgres"
	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	listinguc "github.com/kailas-cloud/jobmatch/internal/usecase/listing"
	matchuc "github.com/kailas-cloud/jobmatch/internal/usecase/match"
)

// Internal interfaces, replaced by fakes in tests.
type matchUseCase interface {
	Match(ctx context.Context, q seeker.Query, limit int) ([]dommatch.ScoredMatch, error)
}

type listingUseCase interface {
	Create(ctx context.Context, in listinguc.Input) (domlisting.Listing, error)
	Get(ctx context.Context, id string) (domlisting.Listing, error)
	List(ctx context.Context) ([]domlisting.Listing, error)
	Delete(ctx context.Context, id string) error
}

// Client is the jobmatch SDK entry point.
type Client struct {
	closer     func()
	matchSvc   matchUseCase
	listingSvc listingUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client and connects to the configured store.
// The provided context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 && cfg.dsn == "" {
		return nil, errors.New("jobmatch: store required (use WithRedis or WithPostgres)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	storage, err := bootstrap.Open(ctx, storeConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("jobmatch: %w", err)
	}

	c := wireClient(storage.Listings, storage.Pinger, cfg, obs)
	c.closer = storage.Close
	return c, nil
}

func storeConfig(cfg *clientConfig) bootstrap.StoreConfig {
	return bootstrap.StoreConfig{
		Driver:    cfg.driver,
		Addrs:     cfg.addrs,
		Password:  cfg.password,
		KeyPrefix: cfg.keyPrefix,
		Postgres:  postgres.Config{DSN: cfg.dsn},
	}
}

func wireClient(repo listinguc.Repository, pinger healthuc.Pinger, cfg *clientConfig, obs *observer) *Client {
	return &Client{
		matchSvc:   matchuc.New(repo).WithLimits(cfg.defaultLimit, cfg.maxLimit),
		listingSvc: listinguc.New(repo),
		healthSvc:  healthuc.New(healthuc.Component{Name: "database", Pinger: pinger}),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Listings returns the listing management service.
func (c *Client) Listings() *ListingService {
	return &ListingService{svc: c.listingSvc, obs: c.obs}
}
