// SPDX-License-Identifier: MIT
// Package: netsim/paths
//
// enumerator.go: resumable simple-path enumeration over an explicit stack.
//
// Algorithm:
//   - Frames (node, next neighbor index) form the stack; onPath mirrors it.
//   - Advancing a frame inspects one neighbor: vertices already on the path
//     are skipped; the destination yields current+[dst] and is never
//     extended through; any other vertex is pushed.
//   - An exhausted frame is popped together with its vertex.
//
// Determinism:
//   - Neighbors are visited in core.Graph order (edge insertion order), so
//     the yield sequence is fixed for a fixed graph.
//
// Complexity:
//   - Time: proportional to the number of partial simple paths explored,
//     exponential in the worst case (K_n has (n-2)! paths of full length).
//   - Memory: O(V) beyond the yielded paths.

package paths

import (
	"github.com/katalvlaran/netsim/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	node int
	next int
}

// Enumerator yields the simple paths between two vertices one at a time.
// It works on an adjacency snapshot taken at construction, so the graph
// may be read concurrently by other enumerators. An Enumerator itself is
// not safe for concurrent use.
type Enumerator struct {
	adj    map[int][]int
	dst    int
	opts   Options
	stack  []frame
	path   core.Path
	onPath map[int]bool
	count  int
	steps  int
	err    error
	done   bool
}

// NewEnumerator prepares enumeration of simple paths from source to
// destination. A missing endpoint or source == destination gives an
// enumerator that yields nothing; that is not an error.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOptionViolation for negative limits.
func NewEnumerator(g *core.Graph, source, destination int, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	e := &Enumerator{dst: destination, opts: o}
	if source == destination || !g.HasVertex(source) || !g.HasVertex(destination) {
		e.done = true
		return e, nil
	}

	e.adj = g.AdjacencyList()
	e.stack = append(make([]frame, 0, len(e.adj)), frame{node: source})
	e.path = append(make(core.Path, 0, len(e.adj)), source)
	e.onPath = map[int]bool{source: true}

	return e, nil
}

// Next returns the next simple path and true, or nil and false once
// enumeration is over. After false, Err reports why it stopped early, if it
// did. Each returned Path is an independent copy.
func (e *Enumerator) Next() (core.Path, bool) {
	if e.done {
		return nil, false
	}

	for len(e.stack) > 0 {
		if e.steps%checkEvery == 0 {
			if err := e.opts.Ctx.Err(); err != nil {
				return e.stop(err)
			}
		}
		e.steps++

		top := &e.stack[len(e.stack)-1]
		nbrs := e.adj[top.node]
		if top.next >= len(nbrs) {
			e.pop()
			continue
		}
		child := nbrs[top.next]
		top.next++

		if e.onPath[child] {
			continue
		}
		// e.path holds len(e.path) vertices; adding child makes that many edges.
		hops := len(e.path)
		if e.opts.MaxHops > 0 && hops > e.opts.MaxHops {
			continue
		}
		if child == e.dst {
			if e.opts.MaxPaths > 0 && e.count == e.opts.MaxPaths {
				return e.stop(ErrPathBudgetExceeded)
			}
			e.count++
			out := make(core.Path, len(e.path)+1)
			copy(out, e.path)
			out[len(e.path)] = child

			return out, true
		}
		// A detour through child needs at least one more edge to reach dst.
		if e.opts.MaxHops > 0 && hops+1 > e.opts.MaxHops {
			continue
		}
		e.push(child)
	}

	e.done = true

	return nil, false
}

// Err returns the error that ended enumeration early: the context error or
// ErrPathBudgetExceeded. It is nil while enumeration is ongoing or after it
// completed normally.
func (e *Enumerator) Err() error { return e.err }

// Count returns the number of paths yielded so far.
func (e *Enumerator) Count() int { return e.count }

func (e *Enumerator) push(id int) {
	e.onPath[id] = true
	e.path = append(e.path, id)
	e.stack = append(e.stack, frame{node: id})
}

func (e *Enumerator) pop() {
	last := e.path[len(e.path)-1]
	delete(e.onPath, last)
	e.path = e.path[:len(e.path)-1]
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *Enumerator) stop(err error) (core.Path, bool) {
	e.err = err
	e.done = true
	e.stack = nil

	return nil, false
}
