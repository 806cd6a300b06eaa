package service

import (
	"testing"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGraphDirectMapping(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{"A": {"B": 1, "C": 4}, "B": {"C": 2}, "C": {}}`))

	require.NoError(t, err)
	assert.Equal(t, domain.Graph{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2},
		"C": {},
	}, g)
}

func TestNormalizeGraphEdgeList(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{"A": [{"to": "B", "distance": 5}]}`))

	require.NoError(t, err)
	assert.Equal(t, domain.Graph{
		"A": {"B": 5},
		"B": {},
	}, g)
}

func TestNormalizeGraphFormsAreEquivalent(t *testing.T) {
	direct, err := NormalizeGraph([]byte(`{"A": {"B": 1, "C": 4}, "B": {"C": 2}}`))
	require.NoError(t, err)

	edgeList, err := NormalizeGraph([]byte(`{
		"A": [{"to": "B", "distance": 1}, {"to": "C", "weight": 4}],
		"B": [{"to": "C", "distance": 2}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, direct, edgeList)
}

func TestNormalizeGraphSkipsMalformedEdges(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{
		"A": [
			{"to": "B", "distance": 5},
			{"distance": 7},
			{"to": "C"},
			"not an edge",
			{"to": "D", "weight": null}
		]
	}`))

	require.NoError(t, err)
	assert.Equal(t, domain.Adjacency{"B": 5}, g["A"])
	assert.NotContains(t, g, "C")
	assert.NotContains(t, g, "D")
}

func TestNormalizeGraphUnrecognizedShapesBecomeLeaves(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{"A": {"B": 1}, "B": "oops", "C": 42, "D": null}`))

	require.NoError(t, err)
	for _, node := range []string{"B", "C", "D"} {
		assert.Empty(t, g[node], "node %s should have no outgoing edges", node)
	}
}

func TestNormalizeGraphAddsReferencedNeighbors(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{"A": {"B": 1, "C": 2}}`))

	require.NoError(t, err)
	assert.True(t, g.HasNode("B"))
	assert.True(t, g.HasNode("C"))
	assert.Empty(t, g["B"])
}

func TestNormalizeGraphCoercesWeights(t *testing.T) {
	g, err := NormalizeGraph([]byte(`{"A": {"B": "2.5", "C": true}}`))

	require.NoError(t, err)
	assert.InDelta(t, 2.5, g["A"]["B"], 1e-9)
	assert.InDelta(t, 1, g["A"]["C"], 1e-9)
}

func TestNormalizeGraphRejectsInvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":                  `{{{`,
		"top-level array":           `[{"to": "B"}]`,
		"top-level string":          `"graph"`,
		"empty object":              `{}`,
		"null payload":              `null`,
		"corrupt weight in map":     `{"A": {"B": "fast"}}`,
		"corrupt weight in list":    `{"A": [{"to": "B", "distance": {"x": 1}}]}`,
		"negative weight":           `{"A": {"B": -1}}`,
		"null weight in map":        `{"A": {"B": null}}`,
	}

	for name, payload := range cases {
		_, err := NormalizeGraph([]byte(payload))
		assert.ErrorIs(t, err, domain.ErrInvalidFormat, "case %q", name)
	}
}

func TestNormalizeGraphEdgeCoercionFailureIsFatal(t *testing.T) {
	// Missing keys are skipped, but a weight that is present and uncoercible
	// fails the whole upload.
	_, err := NormalizeGraph([]byte(`{
		"A": [{"to": "B"}, {"to": "C", "distance": "very far"}]
	}`))

	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}
