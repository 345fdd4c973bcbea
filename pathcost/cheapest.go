// SPDX-License-Identifier: MIT
// Package: netsim/pathcost
//
// cheapest.go: exact cheapest path without enumeration.
//
// Algorithm:
//   - Dijkstra over vertices where entering v through edge (u,v) costs
//     w(u,v) + w(v) and the source starts at w(source).
//   - Lazy decrease-key: stale heap entries are skipped when popped.
//   - Heap ties break on the smaller vertex ID so the result is fixed for a
//     fixed graph.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)

package pathcost

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// ErrNegativeWeight is returned by Cheapest when a vertex or edge weight is
// negative; the search is only exact for non-negative weights.
var ErrNegativeWeight = errors.New("pathcost: negative weight encountered")

// Cheapest returns a minimum-cost simple path from source to destination
// and its cost, computed with Dijkstra instead of enumerating every path.
// Its cost always equals the cost SelectMinimum finds over the complete
// enumeration; when several paths share that cost the path returned may
// differ from the first one in enumeration order.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrNoPathExists if source == destination, either endpoint is missing,
//     or destination is unreachable.
//   - ErrNegativeWeight if any weight in g is negative.
//   - ErrCostOverflow if a partial cost leaves the int64 range.
func Cheapest(g *core.Graph, source, destination int) (core.Path, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if source == destination || !g.HasVertex(source) || !g.HasVertex(destination) {
		return nil, 0, ErrNoPathExists
	}

	vertices := g.VerticesMap()
	for id, v := range vertices {
		if v.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: vertex %d weight=%d", ErrNegativeWeight, id, v.Weight)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, 0, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		weights: vertices,
		adj:     g.AdjacencyList(),
		dist:    make(map[int]int64, len(vertices)),
		prev:    make(map[int]int, len(vertices)),
		visited: make(map[int]bool, len(vertices)),
	}
	if err := r.run(source, destination); err != nil {
		return nil, 0, err
	}

	cost, ok := r.dist[destination]
	if !ok {
		return nil, 0, ErrNoPathExists
	}

	var path core.Path
	for at := destination; ; at = r.prev[at] {
		path = append(path, at)
		if at == source {
			break
		}
	}

	return path.Reverse(), cost, nil
}

// runner holds the mutable state of one Cheapest call.
type runner struct {
	g       *core.Graph
	weights map[int]core.Vertex
	adj     map[int][]int
	dist    map[int]int64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

func (r *runner) run(source, destination int) error {
	r.dist[source] = r.weights[source].Weight
	heap.Push(&r.pq, &nodeItem{id: source, dist: r.dist[source]})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == destination {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u int) error {
	for _, v := range r.adj[u] {
		if r.visited[v] {
			continue
		}
		w, err := r.g.EdgeWeight(u, v)
		if err != nil {
			return err
		}
		d, err := add(r.dist[u], w)
		if err != nil {
			return err
		}
		if d, err = add(d, r.weights[v].Weight); err != nil {
			return err
		}
		if old, seen := r.dist[v]; seen && d >= old {
			continue
		}
		r.dist[v] = d
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: d})
	}

	return nil
}

type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap on (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
