package server

import (
	"context"

	"github.com/ameya/pathserve/internal/repository"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// MirrorHealthService verifies mirror connectivity as part of health checks.
// With no mirror configured the probe always succeeds; the in-memory core has
// no external dependencies.
type MirrorHealthService struct {
	Mirror *repository.Repository
}

// Probe implements the HealthService interface.
func (s MirrorHealthService) Probe(ctx context.Context) error {
	if s.Mirror == nil {
		return nil
	}
	return s.Mirror.Probe(ctx)
}
