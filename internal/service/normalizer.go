package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ameya/pathserve/internal/domain"
)

// NormalizeGraph parses an uploaded JSON payload and turns it into the
// canonical adjacency form. Three shapes are accepted per node entry:
//
//   - direct weight mapping: {"B": 3, "C": 5}
//   - edge list: [{"to": "B", "distance": 3}, {"to": "C", "weight": 5}]
//   - anything else: a node with no outgoing edges
//
// Edge-list items missing "to" or both weight keys are skipped. A weight that
// is present but cannot be coerced fails the whole upload; the two policies
// are deliberately different so a sloppy edge does not poison a dataset while
// a corrupt weight never slips in silently.
func NormalizeGraph(payload []byte) (domain.Graph, error) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}

	normalized := make(domain.Graph, len(raw))
	for nodeID, entry := range raw {
		adj, err := normalizeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", domain.ErrInvalidFormat, nodeID, err)
		}
		normalized[nodeID] = adj
	}

	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", domain.ErrInvalidFormat)
	}

	// Every referenced neighbor must exist as a key, even without outgoing
	// edges, so node lookups never miss.
	for _, adj := range normalized {
		for neighbor := range adj {
			if _, ok := normalized[neighbor]; !ok {
				normalized[neighbor] = domain.Adjacency{}
			}
		}
	}

	return normalized, nil
}

func normalizeEntry(entry any) (domain.Adjacency, error) {
	switch value := entry.(type) {
	case map[string]any:
		adj := make(domain.Adjacency, len(value))
		for neighbor, rawWeight := range value {
			weight, err := coerceWeight(rawWeight)
			if err != nil {
				return nil, fmt.Errorf("edge to %q: %w", neighbor, err)
			}
			adj[neighbor] = weight
		}
		return adj, nil
	case []any:
		adj := make(domain.Adjacency, len(value))
		for _, item := range value {
			edge, ok := item.(map[string]any)
			if !ok {
				continue
			}
			target, ok := edge["to"]
			if !ok {
				continue
			}
			rawWeight, ok := edge["distance"]
			if !ok {
				rawWeight, ok = edge["weight"]
			}
			if !ok || rawWeight == nil {
				continue
			}
			weight, err := coerceWeight(rawWeight)
			if err != nil {
				return nil, fmt.Errorf("edge to %q: %w", coerceNodeID(target), err)
			}
			adj[coerceNodeID(target)] = weight
		}
		return adj, nil
	default:
		// Unrecognized shapes describe a node with no outgoing edges.
		return domain.Adjacency{}, nil
	}
}

func coerceNodeID(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func coerceWeight(v any) (float64, error) {
	var weight float64
	switch value := v.(type) {
	case float64:
		weight = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, fmt.Errorf("weight %q is not numeric", value)
		}
		weight = parsed
	case bool:
		if value {
			weight = 1
		}
	default:
		return 0, fmt.Errorf("weight %v (%T) is not numeric", v, v)
	}

	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("weight %v is not finite", weight)
	}
	if weight < 0 {
		return 0, fmt.Errorf("weight %v is negative", weight)
	}
	return weight, nil
}
