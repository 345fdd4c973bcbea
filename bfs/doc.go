// Package bfs answers connectivity questions about a core.Graph.
//
// BFS grows a breadth-first Tree (visit order, hop counts, parent links)
// from one vertex and can be bounded with WithMaxHops, observed with
// WithOnVisit, or told to ignore links with WithSkip.
//
// Components labels every vertex with a component index. The simulator
// compares labels to drop source/destination pairs that no path joins
// before it pays for enumeration. Reachable answers a single query and
// stops as soon as the target is visited.
//
// Neighbors come in edge insertion order, so visit order is reproducible.
// Component indices follow ascending smallest vertex ID.
//
//	labels, err := bfs.Components(g)
//	if labels[s] != labels[d] {
//	    // no path between s and d
//	}
package bfs
