package pathcost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/pathcost"
	"github.com/katalvlaran/netsim/paths"
)

func TestCheapest(t *testing.T) {
	g := weighted(t)

	p, c, err := pathcost.Cheapest(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Path{1, 2, 3}, p)
	assert.Equal(t, int64(63), c)

	p, c, err = pathcost.Cheapest(g, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Path{3, 2, 1}, p)
	assert.Equal(t, int64(63), c)
}

func TestCheapest_NoPath(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddVertex(9, 1))

	for name, pr := range map[string][2]int{
		"trivial":     {1, 1},
		"missing":     {1, 42},
		"unreachable": {1, 9},
	} {
		_, _, err := pathcost.Cheapest(g, pr[0], pr[1])
		assert.ErrorIs(t, err, pathcost.ErrNoPathExists, name)
	}

	_, _, err := pathcost.Cheapest(nil, 1, 2)
	assert.ErrorIs(t, err, pathcost.ErrGraphNil)
}

func TestCheapest_NegativeWeight(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.SetVertexWeight(2, -1))

	_, _, err := pathcost.Cheapest(g, 1, 3)
	assert.ErrorIs(t, err, pathcost.ErrNegativeWeight)
}

// TestCheapest_MatchesEnumeration checks that on random networks the
// Dijkstra cost equals the minimum over every enumerated simple path.
func TestCheapest_MatchesEnumeration(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.Generate(builder.GenerationParams{
			NodeCount: 8, EdgeProbability: 0.4,
			NodeWeight: builder.WeightRange{Min: 10, Max: 100}, EdgeWeight: builder.WeightRange{Min: 1, Max: 10},
		}, builder.NewRand(seed))
		require.NoError(t, err)

		for _, pr := range paths.Pairs(g) {
			candidates, err := paths.AllSimplePaths(g, pr.Source, pr.Destination)
			require.NoError(t, err)

			p, c, err := pathcost.Cheapest(g, pr.Source, pr.Destination)
			if len(candidates) == 0 {
				assert.ErrorIs(t, err, pathcost.ErrNoPathExists, "pair %s", pr)
				continue
			}
			require.NoError(t, err, "pair %s", pr)

			_, want, err := pathcost.SelectMinimum(g, candidates)
			require.NoError(t, err)
			assert.Equal(t, want, c, "pair %s", pr)

			got, err := pathcost.Cost(g, p)
			require.NoError(t, err)
			assert.Equal(t, c, got, "pair %s path %s", pr, p)
		}
	}
}
