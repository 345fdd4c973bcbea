package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal limits and hooks. The zero value of every field
// means "no limit" or "no hook".
type Options struct {
	Ctx context.Context

	// MaxHops, if > 0, leaves vertices further than MaxHops edges unvisited.
	MaxHops int

	// OnVisit runs when a vertex is dequeued. A non-nil error ends the
	// traversal and is returned wrapped.
	OnVisit func(id, hops int) error

	// Skip, when it returns true, keeps the link from→to out of the
	// traversal, as if it were down.
	Skip func(from, to int) bool

	err error
}

func defaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context, checked once per dequeued
// vertex. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds the traversal radius. 0 means unbounded.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id, hops int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithSkip registers a link filter.
func WithSkip(fn func(from, to int) bool) Option {
	return func(o *Options) { o.Skip = fn }
}

// Tree is the breadth-first tree grown from one start vertex.
type Tree struct {
	// Start is the root vertex.
	Start int
	// Order lists vertices in visit order.
	Order []int
	// Hops is the edge distance of every reached vertex from Start.
	Hops map[int]int
	// Parent links every reached vertex except Start to its predecessor.
	Parent map[int]int
}

// Reached reports whether id was visited.
func (t *Tree) Reached(id int) bool {
	_, ok := t.Hops[id]
	return ok
}

// PathTo returns a fewest-hop path from Start to dest, or nil if dest was
// not reached.
func (t *Tree) PathTo(dest int) core.Path {
	if !t.Reached(dest) {
		return nil
	}
	p := make(core.Path, 0, t.Hops[dest]+1)
	for cur := dest; cur != t.Start; cur = t.Parent[cur] {
		p = append(p, cur)
	}
	p = append(p, t.Start)

	return p.Reverse()
}
