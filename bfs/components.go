package bfs

import (
	"errors"

	"github.com/katalvlaran/netsim/core"
)

// errFound stops the BFS in Reachable once the target is visited.
var errFound = errors.New("bfs: target found")

// Components labels every vertex of g with the index of its connected
// component. Components are numbered from 0 in order of their smallest
// vertex ID, so the labelling is deterministic.
//
// Two vertices are joined by at least one path exactly when their labels
// match, which lets callers skip pairs that have no path before paying for
// enumeration.
//
// Complexity: O(V+E).
func Components(g *core.Graph) (map[int]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := g.AdjacencyList()
	label := make(map[int]int, len(adj))
	next := 0
	queue := make([]int, 0, len(adj))
	for _, root := range g.Vertices() {
		if _, seen := label[root]; seen {
			continue
		}
		label[root] = next
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[cur] {
				if _, seen := label[nbr]; !seen {
					label[nbr] = next
					queue = append(queue, nbr)
				}
			}
		}
		next++
	}

	return label, nil
}

// ComponentCount returns the number of distinct labels in a Components map.
func ComponentCount(labels map[int]int) int {
	max := -1
	for _, c := range labels {
		if c > max {
			max = c
		}
	}

	return max + 1
}

// Reachable reports whether dst can be reached from src. Missing vertices
// are never reachable; a vertex always reaches itself.
func Reachable(g *core.Graph, src, dst int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return false, nil
	}
	found := false
	stop := func(id, _ int) error {
		if id == dst {
			found = true
			return errFound
		}
		return nil
	}
	if _, err := BFS(g, src, WithOnVisit(stop)); err != nil && !errors.Is(err, errFound) {
		return false, err
	}

	return found, nil
}
