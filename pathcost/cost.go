// SPDX-License-Identifier: MIT
// Package: netsim/pathcost
//
// cost.go: path pricing and minimum selection.
//
// Contract:
//   - Cost never returns a partial sum: any invalid step aborts with an error.
//   - Sums are checked for int64 overflow.
//
// Complexity:
//   - Cost: O(len(path)). SelectMinimum/Evaluate: O(Σ len(candidate)).

package pathcost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netsim/core"
)

var (
	// ErrInvalidPath is returned for paths that do not describe a simple walk
	// through the graph.
	ErrInvalidPath = errors.New("pathcost: invalid path")

	// ErrNoPathExists is returned by SelectMinimum for an empty candidate set.
	ErrNoPathExists = errors.New("pathcost: no path exists")

	// ErrCostOverflow is returned when a path's cost exceeds int64.
	ErrCostOverflow = errors.New("pathcost: cost overflows int64")

	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("pathcost: graph is nil")
)

// Cost returns Σ vertex weights + Σ edge weights along path.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrInvalidPath if path is empty, names an unknown vertex, repeats a
//     vertex, or has consecutive vertices not joined by an edge.
//   - ErrCostOverflow if the sum leaves the int64 range.
func Cost(g *core.Graph, path core.Path) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	var (
		total int64
		w     int64
		err   error
		seen  = make(map[int]struct{}, len(path))
	)
	for i, id := range path {
		if _, dup := seen[id]; dup {
			return 0, fmt.Errorf("%w: vertex %d repeated in %s", ErrInvalidPath, id, path)
		}
		seen[id] = struct{}{}

		if w, err = g.VertexWeight(id); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
		}
		if total, err = add(total, w); err != nil {
			return 0, err
		}
		if i == 0 {
			continue
		}
		if w, err = g.EdgeWeight(path[i-1], id); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPath, path, err)
		}
		if total, err = add(total, w); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// SelectMinimum returns the cheapest candidate and its cost. Ties keep the
// first candidate in input order. The returned Path is the candidate itself,
// not a copy.
//
// Errors:
//   - ErrNoPathExists if candidates is empty.
//   - any Cost error, wrapped with the candidate's index.
func SelectMinimum(g *core.Graph, candidates []core.Path) (core.Path, int64, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrNoPathExists
	}

	var (
		best     core.Path
		bestCost int64
	)
	for i, p := range candidates {
		c, err := Cost(g, p)
		if err != nil {
			return nil, 0, fmt.Errorf("candidate %d: %w", i, err)
		}
		if best == nil || c < bestCost {
			best, bestCost = p, c
		}
	}

	return best, bestCost, nil
}

// Evaluate returns the cost of every candidate, index-aligned with the input.
func Evaluate(g *core.Graph, candidates []core.Path) ([]int64, error) {
	out := make([]int64, len(candidates))
	for i, p := range candidates {
		c, err := Cost(g, p)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

func add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrCostOverflow
	}

	return a + b, nil
}
