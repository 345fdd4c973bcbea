// SPDX-License-Identifier: MIT
// Package: netsim/paths
//
// types.go: sentinel errors, functional options and the Pair key.

package paths

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrPathBudgetExceeded is returned when more simple paths exist than
	// the configured WithMaxPaths budget allows.
	ErrPathBudgetExceeded = errors.New("paths: path budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// checkEvery is the number of stack steps between context checks.
const checkEvery = 1024

// Option configures enumeration.
type Option func(*Options)

// Options holds the enumeration limits.
type Options struct {
	// Ctx allows cancellation; checked every checkEvery stack steps.
	Ctx context.Context

	// MaxPaths, if > 0, caps the number of paths yielded per pair. Finding
	// one more path than the cap ends enumeration with ErrPathBudgetExceeded.
	MaxPaths int

	// MaxHops, if > 0, discards paths with more edges than MaxHops.
	MaxHops int

	err error
}

// DefaultOptions returns unbounded enumeration on a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths sets the per-pair path budget. 0 means unlimited.
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithMaxHops sets the maximum path length in edges. 0 means unlimited.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Pair is an ordered (source, destination) query.
type Pair struct {
	Source      int
	Destination int
}

// Trivial reports whether the pair starts and ends at the same vertex.
// Trivial pairs never have simple paths.
func (p Pair) Trivial() bool { return p.Source == p.Destination }

// String renders the pair as "(s , d)".
func (p Pair) String() string { return fmt.Sprintf("(%d , %d)", p.Source, p.Destination) }
