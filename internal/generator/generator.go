// Package generator produces synthetic graph datasets in the raw upload
// format accepted by the server, useful for seeding and load experiments.
package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Dataset is a raw graph description keyed by node ID, ready to be serialized
// and uploaded. Values are either weight mappings or edge lists depending on
// the configured form.
type Dataset map[string]any

// Generator produces synthetic weighted directed graphs.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumNodes <= 0 {
		cfg.NumNodes = DefaultConfig().NumNodes
	}
	if cfg.MaxOutDegree <= 0 {
		cfg.MaxOutDegree = DefaultConfig().MaxOutDegree
	}
	if cfg.MaxWeight <= 0 {
		cfg.MaxWeight = DefaultConfig().MaxWeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises a graph dataset. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	nodes := make([]string, g.cfg.NumNodes)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%04d", i)
	}

	dataset := make(Dataset, len(nodes))
	for i, node := range nodes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		degree := g.rand.Intn(g.cfg.MaxOutDegree + 1)
		adjacency := make(map[string]float64, degree)
		for e := 0; e < degree; e++ {
			target := nodes[g.rand.Intn(len(nodes))]
			if target == node {
				continue
			}
			adjacency[target] = g.randomWeight()
		}

		// Chain every node to its successor so most of the graph stays
		// reachable from N0000.
		if i+1 < len(nodes) {
			adjacency[nodes[i+1]] = g.randomWeight()
		}

		if g.cfg.EdgeListForm {
			edges := make([]map[string]any, 0, len(adjacency))
			for to, weight := range adjacency {
				edges = append(edges, map[string]any{
					"to":       to,
					"distance": weight,
				})
			}
			dataset[node] = edges
		} else {
			dataset[node] = adjacency
		}
	}

	return dataset, nil
}

func (g *Generator) randomWeight() float64 {
	weight := g.rand.Float64() * g.cfg.MaxWeight
	return math.Round(weight*100) / 100
}
