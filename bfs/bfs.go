package bfs

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// BFS grows the breadth-first tree of g from start.
//
// On cancellation or a hook error the tree built so far is returned along
// with the error.
func BFS(g *core.Graph, start int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	adj := g.AdjacencyList()
	t := &Tree{
		Start:  start,
		Order:  make([]int, 0, len(adj)),
		Hops:   map[int]int{start: 0},
		Parent: make(map[int]int, len(adj)),
	}
	queue := append(make([]int, 0, len(adj)), start)

	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return t, err
		}
		cur := queue[0]
		queue = queue[1:]
		hops := t.Hops[cur]

		t.Order = append(t.Order, cur)
		if o.OnVisit != nil {
			if err := o.OnVisit(cur, hops); err != nil {
				return t, fmt.Errorf("bfs: visit %d: %w", cur, err)
			}
		}
		if o.MaxHops > 0 && hops == o.MaxHops {
			continue
		}
		for _, nbr := range adj[cur] {
			if t.Reached(nbr) || (o.Skip != nil && o.Skip(cur, nbr)) {
				continue
			}
			t.Hops[nbr] = hops + 1
			t.Parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return t, nil
}
