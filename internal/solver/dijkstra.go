// Package solver computes shortest paths over canonical graphs using
// Dijkstra's algorithm. Edge weights must be non-negative, which the
// normalization step guarantees.
package solver

import (
	"container/heap"

	"github.com/ameya/pathserve/internal/domain"
)

// Solve returns the minimum-weight path from start to end in the given graph,
// or an unreachable result when no path exists. Both node IDs must be keys of
// the graph; callers are expected to validate them beforehand. Each call is
// self-contained and never mutates the graph.
func Solve(g domain.Graph, start, end string) domain.PathResult {
	dist := map[string]float64{start: 0}
	prev := make(map[string]string)

	frontier := &minFrontier{{node: start, dist: 0}}
	heap.Init(frontier)

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(frontierItem)

		// A node can be pushed multiple times with different tentative
		// distances; only the entry matching the recorded best is live.
		if item.dist > dist[item.node] {
			continue
		}
		if item.node == end {
			break
		}

		for neighbor, weight := range g[item.node] {
			candidate := item.dist + weight
			if best, seen := dist[neighbor]; !seen || candidate < best {
				dist[neighbor] = candidate
				prev[neighbor] = item.node
				heap.Push(frontier, frontierItem{node: neighbor, dist: candidate})
			}
		}
	}

	total, reached := dist[end]
	if !reached {
		return domain.Unreachable()
	}

	path, ok := reconstruct(prev, start, end)
	if !ok {
		return domain.Unreachable()
	}

	return domain.PathResult{
		Path:          path,
		TotalDistance: total,
		Found:         true,
	}
}

// reconstruct walks the predecessor map backwards from end to start and
// reverses the result. A missing predecessor before reaching start signals
// inconsistent bookkeeping; the caller downgrades that to unreachable.
func reconstruct(prev map[string]string, start, end string) ([]string, bool) {
	path := []string{end}
	for path[len(path)-1] != start {
		parent, ok := prev[path[len(path)-1]]
		if !ok {
			return nil, false
		}
		path = append(path, parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

type frontierItem struct {
	node string
	dist float64
}

// minFrontier is a min-heap of discovered but unsettled nodes keyed by
// tentative distance.
type minFrontier []frontierItem

func (f minFrontier) Len() int           { return len(f) }
func (f minFrontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f minFrontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *minFrontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *minFrontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
