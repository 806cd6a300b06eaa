package domain

// PathResult is the outcome of a shortest-path computation. When Found is
// false the destination is unreachable and Path and TotalDistance carry no
// meaning.
type PathResult struct {
	Path          []string
	TotalDistance float64
	Found         bool
}

// Unreachable is the canonical result for a pair of nodes with no connecting
// path.
func Unreachable() PathResult {
	return PathResult{}
}
