// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// weight.go: inclusive integer weight ranges and uniform sampling.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightRange is an inclusive integer interval [Min, Max].
type WeightRange struct {
	Min int64 `yaml:"min" toml:"min"`
	Max int64 `yaml:"max" toml:"max"`
}

// Degenerate reports whether the range holds a single value.
func (r WeightRange) Degenerate() bool { return r.Min == r.Max }

// Contains reports whether w lies in [Min, Max].
func (r WeightRange) Contains(w int64) bool { return w >= r.Min && w <= r.Max }

// String renders the range as "[min,max]".
func (r WeightRange) String() string { return fmt.Sprintf("[%d,%d]", r.Min, r.Max) }

// width returns Max-Min when the range is samplable with Int63n(width+1).
func (r WeightRange) width() (int64, bool) {
	if r.Min > r.Max {
		return 0, false
	}
	// Max-Min would overflow.
	if r.Min < 0 && r.Max > math.MaxInt64+r.Min {
		return 0, false
	}
	w := r.Max - r.Min
	if w == math.MaxInt64 {
		return 0, false
	}

	return w, true
}

// Validate returns ErrInvalidParameter when Min > Max or the range cannot be sampled.
func (r WeightRange) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("range %s: min > max: %w", r, ErrInvalidParameter)
	}
	if _, ok := r.width(); !ok {
		return fmt.Errorf("range %s: too wide to sample: %w", r, ErrInvalidParameter)
	}

	return nil
}

// Draw samples uniformly from the range. A degenerate range never touches rng.
// The range must be valid; rng must be non-nil unless the range is degenerate.
func (r WeightRange) Draw(rng *rand.Rand) int64 {
	w, _ := r.width()
	if w == 0 {
		return r.Min
	}

	return r.Min + rng.Int63n(w+1)
}
