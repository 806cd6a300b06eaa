package generator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ameya/pathserve/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	cfg := Config{NumNodes: 20, MaxOutDegree: 3, MaxWeight: 10, Seed: 7}

	first, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratedDatasetNormalizes(t *testing.T) {
	for _, edgeList := range []bool{false, true} {
		cfg := Config{NumNodes: 15, MaxOutDegree: 3, MaxWeight: 10, Seed: 11, EdgeListForm: edgeList}

		dataset, err := New(cfg).Generate(context.Background())
		require.NoError(t, err)

		payload, err := json.Marshal(dataset)
		require.NoError(t, err)

		g, err := service.NormalizeGraph(payload)
		require.NoError(t, err, "edgeList=%v", edgeList)
		assert.GreaterOrEqual(t, g.NodeCount(), cfg.NumNodes)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{NumNodes: 1000, Seed: 3}).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
