// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach method context with %w.
//   • Algorithms never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrInvalidParameter indicates malformed generation parameters: negative
// vertex count, probability outside [0,1], a weight range with min > max, or
// a range too wide to sample.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates a stochastic step without a configured rng.
// Errors carrying it also match ErrInvalidParameter.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")
