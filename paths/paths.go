// SPDX-License-Identifier: MIT
// Package: netsim/paths
//
// paths.go: collecting helpers over Enumerator.

package paths

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// AllSimplePaths returns every simple path from source to destination in
// enumeration order. The result is empty (non-nil) when the endpoints are
// equal, absent or disconnected.
//
// When enumeration stops early (context or budget) the paths found so far
// are returned together with the error.
func AllSimplePaths(g *core.Graph, source, destination int, opts ...Option) ([]core.Path, error) {
	e, err := NewEnumerator(g, source, destination, opts...)
	if err != nil {
		return nil, err
	}

	out := []core.Path{}
	for p, ok := e.Next(); ok; p, ok = e.Next() {
		out = append(out, p)
	}

	return out, e.Err()
}

// Pairs returns every ordered pair of vertex IDs of g, source ascending then
// destination ascending. Trivial pairs (source == destination) are
// included so the sequence lines up with a full n×n table.
func Pairs(g *core.Graph) []Pair {
	if g == nil {
		return nil
	}
	ids := g.Vertices()
	out := make([]Pair, 0, len(ids)*len(ids))
	for _, s := range ids {
		for _, d := range ids {
			out = append(out, Pair{Source: s, Destination: d})
		}
	}

	return out
}

// AllPairsPaths enumerates the simple paths of every pair in Pairs order.
// Trivial pairs map to an empty slice. On the first enumeration error the
// map built so far is returned with the error wrapped by its pair.
func AllPairsPaths(g *core.Graph, opts ...Option) (map[Pair][]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := resolve(opts); err != nil {
		return nil, err
	}

	pairs := Pairs(g)
	out := make(map[Pair][]core.Path, len(pairs))
	for _, pr := range pairs {
		ps, err := AllSimplePaths(g, pr.Source, pr.Destination, opts...)
		out[pr] = ps
		if err != nil {
			return out, fmt.Errorf("paths: pair %s: %w", pr, err)
		}
	}

	return out, nil
}
