// Package store holds the single active graph available for queries.
package store

import (
	"sync/atomic"

	"github.com/ameya/pathserve/internal/domain"
)

// ActiveGraph keeps at most one published graph snapshot. Replacement is an
// atomic pointer swap, so a reader observes either the previous graph in its
// entirety or the new one, never a mix. Published graphs are never mutated.
type ActiveGraph struct {
	current atomic.Pointer[domain.Graph]
}

// New returns an ActiveGraph with no graph loaded.
func New() *ActiveGraph {
	return &ActiveGraph{}
}

// Replace publishes the given graph as the active dataset, discarding any
// previous one. The caller must not modify the graph after publishing.
func (s *ActiveGraph) Replace(g domain.Graph) {
	s.current.Store(&g)
}

// Snapshot returns the currently active graph. The second return value is
// false when no graph has been uploaded yet.
func (s *ActiveGraph) Snapshot() (domain.Graph, bool) {
	p := s.current.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}
