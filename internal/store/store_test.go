package store

import (
	"sync"
	"testing"

	"github.com/ameya/pathserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBeforeAnyReplace(t *testing.T) {
	s := New()

	g, ok := s.Snapshot()
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestReplacePublishesWholeGraph(t *testing.T) {
	s := New()

	first := domain.Graph{"A": {"B": 1}, "B": {}}
	s.Replace(first)

	g, ok := s.Snapshot()
	require.True(t, ok)
	assert.Equal(t, first, g)

	second := domain.Graph{"X": {}}
	s.Replace(second)

	g, ok = s.Snapshot()
	require.True(t, ok)
	assert.Equal(t, second, g)
}

func TestConcurrentReplaceAndSnapshot(t *testing.T) {
	s := New()

	published := []domain.Graph{
		{"A": {"B": 1}, "B": {}},
		{"C": {"D": 2}, "D": {}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Replace(published[i%2])
		}(i)
		go func() {
			defer wg.Done()
			g, ok := s.Snapshot()
			if !ok {
				return
			}
			// A snapshot is always one of the published graphs in its
			// entirety, never a mix.
			if _, hasA := g["A"]; hasA {
				assert.Contains(t, g, "B")
				assert.NotContains(t, g, "C")
			} else {
				assert.Contains(t, g, "C")
				assert.Contains(t, g, "D")
			}
		}()
	}
	wg.Wait()
}
