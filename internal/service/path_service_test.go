package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/ameya/pathserve/internal/graphdb"
	"github.com/ameya/pathserve/internal/repository"
	"github.com/ameya/pathserve/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(mirror *repository.Repository) *PathService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPathService(store.New(), mirror, logger, 2)
}

func TestUploadGraphActivatesSnapshot(t *testing.T) {
	svc := newTestService(nil)

	g, err := svc.UploadGraph(context.Background(), "network.json", []byte(`{"A": {"B": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())

	result, err := svc.ShortestPath(context.Background(), "A", "B")
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B"}, result.Path)
}

func TestUploadGraphFailureKeepsPreviousGraph(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.UploadGraph(context.Background(), "good.json", []byte(`{"A": {"B": 1}}`))
	require.NoError(t, err)

	_, err = svc.UploadGraph(context.Background(), "bad.json", []byte(`{"A": {"B": "oops"}}`))
	require.ErrorIs(t, err, domain.ErrInvalidFormat)

	// The earlier graph must still answer queries.
	result, err := svc.ShortestPath(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.True(t, result.Found)
}

func TestShortestPathWithoutActiveGraph(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.ShortestPath(context.Background(), "A", "B")
	assert.ErrorIs(t, err, domain.ErrNoActiveGraph)
}

func TestShortestPathUnknownNode(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.UploadGraph(context.Background(), "network.json", []byte(`{"A": {"B": 1}}`))
	require.NoError(t, err)

	_, err = svc.ShortestPath(context.Background(), "A", "C")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)

	_, err = svc.ShortestPath(context.Background(), "C", "B")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestShortestPathUnreachableIsNotAnError(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.UploadGraph(context.Background(), "islands.json", []byte(`{"A": {}, "B": {}}`))
	require.NoError(t, err)

	result, err := svc.ShortestPath(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestUploadGraphMirrorsNodes(t *testing.T) {
	mem := graphdb.NewMemoryClient()
	svc := newTestService(repository.New(mem))

	mem.PushReadResult(graphdb.Result{
		Records: []graphdb.Record{{"count": int64(2)}},
	})

	_, err := svc.UploadGraph(context.Background(), "network.json", []byte(`{"A": {"B": 1}, "B": {}}`))
	require.NoError(t, err)

	// One clear statement plus one merge per node.
	calls := mem.WriteCalls()
	assert.Len(t, calls, 3)

	// The upload reads the node count back to verify the replay.
	assert.Len(t, mem.ReadCalls(), 1)
}

func TestUploadGraphSurvivesMirrorFailure(t *testing.T) {
	mem := graphdb.NewMemoryClient().WithError(assert.AnError)
	svc := newTestService(repository.New(mem))

	_, err := svc.UploadGraph(context.Background(), "network.json", []byte(`{"A": {"B": 1}}`))
	require.NoError(t, err)

	// The snapshot is live even though mirroring failed.
	result, err := svc.ShortestPath(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.True(t, result.Found)
}
