// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/Edges.
// Determinism:
//   - Edge IDs are monotonic from 1; Edges() returns them ascending.
//   - Adjacency buckets keep insertion order, removal preserves the order of the rest.

package core

import (
	"fmt"
	"sort"
)

// AddEdge links u and v with the given transmission delay and returns the new edge ID.
// Missing endpoints are created with weight 0.
//
// Steps:
//  1. Reject self-loops (ErrLoopNotAllowed).
//  2. Reject a second edge on the same unordered pair (ErrMultiEdgeNotAllowed).
//  3. Ensure both endpoints, assign the next ID, append to both adjacency buckets.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) (int, error) {
	if u == v {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(u, v)
	if _, exists := g.pairs[k]; exists {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.addVertexLocked(u, 0)
	g.addVertexLocked(v, 0)

	g.nextEdgeID++
	eid := g.nextEdgeID
	g.edges[eid] = &Edge{ID: eid, From: u, To: v, Weight: weight}
	g.pairs[k] = eid
	g.adjacency[u] = append(g.adjacency[u], eid)
	g.adjacency[v] = append(g.adjacency[v], eid)

	return eid, nil
}

// RemoveEdge deletes the edge between u and v.
//
// Errors:
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.pairs[keyOf(u, v)]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	g.removeEdgeLocked(eid)

	return nil
}

// removeEdgeLocked unlinks eid from both endpoint buckets. Caller holds mu.
func (g *Graph) removeEdgeLocked(eid int) {
	e, ok := g.edges[eid]
	if !ok {
		return
	}
	g.adjacency[e.From] = dropID(g.adjacency[e.From], eid)
	g.adjacency[e.To] = dropID(g.adjacency[e.To], eid)
	delete(g.pairs, keyOf(e.From, e.To))
	delete(g.edges, eid)
}

// dropID removes the first occurrence of id from ids, preserving order.
func dropID(ids []int, id int) []int {
	for i, x := range ids {
		if x == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}

	return ids
}

// HasEdge reports whether u and v are adjacent (order-insensitive).
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[keyOf(u, v)]

	return ok
}

// EdgeWeight returns the transmission delay of the edge {u,v}.
//
// Errors:
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph) EdgeWeight(u, v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.pairs[keyOf(u, v)]
	if !ok {
		return 0, fmt.Errorf("EdgeWeight(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return g.edges[eid].Weight, nil
}

// SetEdgeWeight replaces the transmission delay of the edge {u,v}.
//
// Errors:
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph) SetEdgeWeight(u, v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.pairs[keyOf(u, v)]
	if !ok {
		return fmt.Errorf("SetEdgeWeight(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	g.edges[eid].Weight = weight

	return nil
}

// Edges returns copies of all edges sorted by ID ascending.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
