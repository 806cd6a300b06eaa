// Package repository mirrors the active graph into the configured graph
// database so the dataset can be explored with external tooling. The
// in-memory snapshot stays authoritative; the mirror is write-behind.
package repository

import (
	"context"
	"fmt"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/ameya/pathserve/internal/graphdb"
)

const (
	clearGraphCypher = `MATCH (n:Node) DETACH DELETE n`

	mergeNodeCypher = `
MERGE (n:Node {id: $id})
WITH n
UNWIND $edges AS edge
MERGE (m:Node {id: edge.to})
MERGE (n)-[r:EDGE]->(m)
SET r.weight = edge.weight`

	countNodesCypher = `MATCH (n:Node) RETURN count(n) AS count`
)

// Repository encapsulates mirror persistence operations.
type Repository struct {
	client graphdb.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graphdb.Client) *Repository {
	return &Repository{client: client}
}

// Clear removes the previously mirrored graph. Called before replaying a new
// upload so the mirror matches the active snapshot wholesale.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, clearGraphCypher, nil); err != nil {
		return fmt.Errorf("clear mirrored graph: %w", err)
	}
	return nil
}

// MirrorNode writes a single node and its outgoing edges to the mirror.
func (r *Repository) MirrorNode(ctx context.Context, id string, adj domain.Adjacency) error {
	edges := make([]map[string]any, 0, len(adj))
	for to, weight := range adj {
		edges = append(edges, map[string]any{
			"to":     to,
			"weight": weight,
		})
	}

	params := map[string]any{
		"id":    id,
		"edges": edges,
	}

	if _, err := r.client.ExecuteWrite(ctx, mergeNodeCypher, params); err != nil {
		return fmt.Errorf("mirror node %s: %w", id, err)
	}
	return nil
}

// CountNodes reports how many nodes the mirror currently holds. Used to
// verify a replayed upload landed in full.
func (r *Repository) CountNodes(ctx context.Context) (int64, error) {
	res, err := r.client.ExecuteRead(ctx, countNodesCypher, nil)
	if err != nil {
		return 0, fmt.Errorf("count mirrored nodes: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return toInt64(res.Records[0]["count"]), nil
}

func toInt64(v any) int64 {
	switch value := v.(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case float64:
		return int64(value)
	default:
		return 0
	}
}

// Probe verifies connectivity to the mirror database.
func (r *Repository) Probe(ctx context.Context) error {
	return r.client.VerifyConnectivity(ctx)
}
