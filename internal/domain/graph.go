package domain

// Adjacency maps a neighbor node ID to the weight of the outgoing edge.
type Adjacency map[string]float64

// Graph is a directed weighted graph in canonical adjacency form. Every node
// that appears anywhere in the graph, including edge targets, is present as a
// key, so lookups never need a fallback. Graphs are immutable once published.
type Graph map[string]Adjacency

// HasNode reports whether the given node ID exists in the graph.
func (g Graph) HasNode(id string) bool {
	_, ok := g[id]
	return ok
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int {
	return len(g)
}

// EdgeCount returns the total number of directed edges in the graph.
func (g Graph) EdgeCount() int {
	total := 0
	for _, adj := range g {
		total += len(adj)
	}
	return total
}
