// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph declarations, sentinel errors and NewGraph.
// Policy:
//   - Only sentinel errors are exported; callers branch with errors.Is.
//   - The Graph is simple and undirected; there are no mode flags.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair was requested.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a network node.
type Vertex struct {
	// ID is the unique identifier for this Vertex within its Graph.
	ID int

	// Weight is the processing delay of the node.
	Weight int64
}

// Edge is an undirected link between two distinct vertices.
//
// From and To keep the orientation the edge was added with; lookups treat
// the pair as unordered.
type Edge struct {
	// ID is assigned monotonically from 1 in insertion order.
	ID int

	// From is the first endpoint as passed to AddEdge.
	From int

	// To is the second endpoint as passed to AddEdge.
	To int

	// Weight is the transmission delay of the link.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint of e, From is returned.
func (e *Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// pairKey is the canonical (min,max) form of an unordered vertex pair.
type pairKey struct{ lo, hi int }

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog and adjacency buckets for n vertices.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.vertices = make(map[int]*Vertex, n)
		g.adjacency = make(map[int][]int, n)
	}
}

// Graph is the doubly-weighted network.
//
// mu guards every field below it. adjacency stores, per vertex, the IDs of its
// incident edges in insertion order; pairs maps an unordered pair to its edge.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID int
	vertices   map[int]*Vertex // vertex ID → Vertex
	edges      map[int]*Edge   // edge ID → Edge
	pairs      map[pairKey]int // {u,v} → edge ID
	adjacency  map[int][]int   // vertex ID → incident edge IDs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[int]*Edge),
		pairs:     make(map[pairKey]int),
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
