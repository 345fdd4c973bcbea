// Package core provides the in-memory doubly-weighted network model used by
// the simulator: a simple undirected Graph whose vertices carry a processing
// delay and whose edges carry a transmission delay.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple: at most one edge per unordered pair, no self-loops.
//   - Integer vertex IDs (arena + index pattern); IDs are never renumbered,
//     removing a vertex leaves the survivors untouched.
//   - Integer weights on both vertices and edges.
//   - A single sync.RWMutex guards all catalogs, so a generated graph can be
//     shared read-only by many enumeration workers.
//
// Determinism:
//
//   - Vertices() returns IDs ascending.
//   - Edges() returns edges by Edge.ID ascending (insertion order).
//   - Neighbors(id) returns neighbors in the insertion order of the incident
//     edges. Path enumeration order is derived from this, which keeps results
//     reproducible for a fixed graph.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int, weight int64) error   // O(1)
//	SetVertexWeight(id int, w int64) error  // O(1)
//	RemoveVertex(id int) error              // O(deg(v)²)
//	RemoveIsolates() int                    // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(u, v int, weight int64) (int, error) // O(1)
//	SetEdgeWeight(u, v int, w int64) error       // O(1)
//	EdgeWeight(u, v int) (int64, error)          // O(1)
//
//	// Queries
//	Neighbors(id int) ([]int, error)  // O(deg(v))
//	Vertices() []int                  // O(V log V)
//	Edges() []*Edge                   // O(E log E)
//	Stats() *GraphStats               // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - second edge between the same pair requested.
//
// Path is the shared value type for a node sequence; it is produced by the
// paths package and consumed by pathcost and sim.
package core
