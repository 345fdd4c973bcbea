package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/paths"
	"github.com/katalvlaran/netsim/sim"
	"github.com/katalvlaran/netsim/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func runParams() sim.Params {
	return sim.Params{
		GenerationParams: builder.GenerationParams{
			NodeCount:       7,
			EdgeProbability: 0.4,
			NodeWeight:      builder.WeightRange{Min: 10, Max: 100},
			EdgeWeight:      builder.WeightRange{Min: 1, Max: 10},
		},
		Iterations: 2,
		Seed:       42,
	}
}

func simulate(t *testing.T, p sim.Params) []*sim.Iteration {
	t.Helper()
	s, err := sim.New(sim.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	defer s.Close()

	its, err := s.Run(context.Background(), p)
	require.NoError(t, err)

	return its
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	p := runParams()
	its := simulate(t, p)

	runID, err := store.SaveRun(ctx, p)
	require.NoError(t, err)
	for _, it := range its {
		require.NoError(t, store.SaveIteration(ctx, runID, it))
	}

	infos, err := store.Iterations(ctx, runID)
	require.NoError(t, err)
	require.Len(t, infos, len(its))

	for i, it := range its {
		assert.Equal(t, i, infos[i].Index)
		assert.Equal(t, it.Graph.VertexCount(), infos[i].Vertices)
		assert.Equal(t, it.Graph.EdgeCount(), infos[i].Edges)

		got, err := store.Results(ctx, runID, it.Index)
		require.NoError(t, err)
		if len(it.Results) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, it.Results, got)
		}

		g, err := store.Graph(ctx, runID, it.Index)
		require.NoError(t, err)
		assert.Equal(t, it.Graph.VerticesMap(), g.VerticesMap())
		assert.Equal(t, it.Graph.Edges(), g.Edges())
		assert.Equal(t, it.Graph.AdjacencyList(), g.AdjacencyList())
	}
}

func TestStore_Truncated(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	runID, err := store.SaveRun(ctx, runParams())
	require.NoError(t, err)

	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)
	it := &sim.Iteration{
		Index:     0,
		Graph:     g,
		Truncated: []paths.Pair{{Source: 1, Destination: 2}, {Source: 0, Destination: 1}},
	}
	require.NoError(t, store.SaveIteration(ctx, runID, it))

	got, err := store.Truncated(ctx, runID, 0)
	require.NoError(t, err)
	assert.Equal(t, []paths.Pair{{Source: 0, Destination: 1}, {Source: 1, Destination: 2}}, got)

	// Saving the same iteration twice is rejected and leaves the first copy intact.
	assert.Error(t, store.SaveIteration(ctx, runID, it))
	got, err = store.Truncated(ctx, runID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Results(ctx, 1, 0)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
	_, err = store.Graph(ctx, 1, 0)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
	_, err = store.Truncated(ctx, 1, 0)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)

	infos, err := store.Iterations(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStore_FileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.db")

	store, err := sqlite.New(ctx, path)
	require.NoError(t, err)
	runID, err := store.SaveRun(ctx, runParams())
	require.NoError(t, err)
	its := simulate(t, runParams())
	require.NoError(t, store.SaveIteration(ctx, runID, its[0]))
	require.NoError(t, store.Close())

	store, err = sqlite.New(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Results(ctx, runID, 0)
	require.NoError(t, err)
	assert.Len(t, got, len(its[0].Results))

	next, err := store.SaveRun(ctx, runParams())
	require.NoError(t, err)
	assert.Greater(t, next, runID)
}
