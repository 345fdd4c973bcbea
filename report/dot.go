package report

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netsim/core"
)

// dotNode carries the processing delay as an external label.
type dotNode struct {
	id     int64
	weight int64
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "xlabel", Value: strconv.FormatInt(n.weight, 10)}}
}

// dotEdge carries the transmission delay as the edge label.
type dotEdge struct {
	from, to dotNode
	weight   int64
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node   { return e.to }

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{from: e.to, to: e.from, weight: e.weight}
}

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatInt(e.weight, 10)}}
}

// WriteDOT renders g in Graphviz DOT form. Vertices are labelled with their
// ID and carry their weight as xlabel; edges carry their weight as label.
func WriteDOT(w io.Writer, g *core.Graph, name string) error {
	if g == nil {
		return fmt.Errorf("report: nil graph")
	}

	vertices := g.VerticesMap()
	dg := simple.NewUndirectedGraph()
	nodes := make(map[int]dotNode, len(vertices))
	for _, id := range g.Vertices() {
		n := dotNode{id: int64(id), weight: vertices[id].Weight}
		nodes[id] = n
		dg.AddNode(n)
	}
	for _, e := range g.Edges() {
		dg.SetEdge(dotEdge{from: nodes[e.From], to: nodes[e.To], weight: e.Weight})
	}

	b, err := dot.Marshal(dg, name, "", "\t")
	if err != nil {
		return fmt.Errorf("report: marshal dot: %w", err)
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return err
	}

	return nil
}
