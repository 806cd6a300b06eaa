package generator

// Config drives the synthetic graph generator.
type Config struct {
	NumNodes     int
	MaxOutDegree int
	MaxWeight    float64
	// EdgeListForm emits node entries as [{"to": ..., "distance": ...}]
	// instead of the direct weight mapping.
	EdgeListForm bool
	Seed         int64
}

// DefaultConfig returns baseline settings producing a mid-sized connected-ish
// graph.
func DefaultConfig() Config {
	return Config{
		NumNodes:     100,
		MaxOutDegree: 4,
		MaxWeight:    50,
		Seed:         42,
	}
}
