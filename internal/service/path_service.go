// Package service holds the graph ingestion and shortest-path orchestration
// logic sitting between the HTTP handlers and the core components.
package service

import (
	"context"
	"log/slog"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/ameya/pathserve/internal/repository"
	"github.com/ameya/pathserve/internal/solver"
	"github.com/ameya/pathserve/internal/store"
)

// PathService owns the active graph lifecycle and answers shortest-path
// queries against the current snapshot.
type PathService struct {
	store  *store.ActiveGraph
	mirror *repository.Repository
	logger *slog.Logger
	pool   workerPool
}

// NewPathService constructs a PathService. The mirror may be nil, in which
// case uploads are kept in memory only.
func NewPathService(st *store.ActiveGraph, mirror *repository.Repository, logger *slog.Logger, mirrorWorkers int) *PathService {
	return &PathService{
		store:  st,
		mirror: mirror,
		logger: logger,
		pool:   newWorkerPool(mirrorWorkers),
	}
}

// UploadGraph normalizes the payload and, on success, atomically replaces the
// active graph. On any normalization failure the previously active graph is
// left untouched. Mirroring failures do not fail the upload; the snapshot is
// already live.
func (s *PathService) UploadGraph(ctx context.Context, filename string, payload []byte) (domain.Graph, error) {
	g, err := NormalizeGraph(payload)
	if err != nil {
		return nil, err
	}

	s.store.Replace(g)
	s.logger.Info("active graph replaced",
		"filename", filename,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
	)

	if err := s.mirrorGraph(ctx, g); err != nil {
		s.logger.Warn("graph mirror update failed", "error", err)
	}

	return g, nil
}

// ShortestPath computes the minimum-weight path between two nodes of the
// active graph. The boundary guards live here: a missing graph or an unknown
// node ID short-circuits before the solver runs.
func (s *PathService) ShortestPath(ctx context.Context, start, end string) (domain.PathResult, error) {
	g, ok := s.store.Snapshot()
	if !ok {
		return domain.PathResult{}, domain.ErrNoActiveGraph
	}

	if !g.HasNode(start) || !g.HasNode(end) {
		return domain.PathResult{}, domain.ErrUnknownNode
	}

	return solver.Solve(g, start, end), nil
}

func (s *PathService) mirrorGraph(ctx context.Context, g domain.Graph) error {
	if s.mirror == nil {
		return nil
	}

	if err := s.mirror.Clear(ctx); err != nil {
		return err
	}

	nodes := make([]string, 0, len(g))
	for id := range g {
		nodes = append(nodes, id)
	}

	err := s.pool.run(ctx, len(nodes), func(idx int) error {
		return s.mirror.MirrorNode(ctx, nodes[idx], g[nodes[idx]])
	})
	if err != nil {
		return err
	}

	// Read back the mirrored node count so a partially applied replay does
	// not go unnoticed.
	count, err := s.mirror.CountNodes(ctx)
	if err != nil {
		return err
	}
	if count != int64(g.NodeCount()) {
		s.logger.Warn("mirror node count mismatch",
			"mirrored", count,
			"expected", g.NodeCount(),
		)
	}
	return nil
}
