// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsim/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls on distinct pairs
// are safe and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(0, id, int64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs many readers against a fixed graph, which is
// how enumeration workers share a generated network.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge(i, i+1, 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.Neighbors(i)
				_, _ = g.EdgeWeight(i, i+1)
				_ = g.AdjacencyList()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 51, g.VertexCount())
}
