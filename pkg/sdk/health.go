package jobmatch

import (
	"context"
	"errors"
	"time"

	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
)

// HealthStatus is the aggregated store health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}

// Healthy reports whether every component answered.
func (h HealthStatus) Healthy() bool { return h.Status == string(healthuc.Healthy) }

var errUnhealthy = errors.New("unhealthy")

// Health pings the listing store.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	hs := HealthStatus{Status: string(report.Status), Checks: checks}

	var err error
	if !hs.Healthy() {
		err = errUnhealthy
	}
	c.obs.observe(opHealth, start, err)
	return hs
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
