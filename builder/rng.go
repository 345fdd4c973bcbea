// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// rng.go: deterministic RNG construction and per-iteration streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Give every iteration its own
//     stream via DeriveRand instead of sharing one.

package builder

import "math/rand"

// DefaultSeed is used when callers pass seed == 0 to NewRand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer. Small input changes give well-spread outputs.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns the independent stream number `stream` of seed.
// The result depends only on (seed, stream), never on call order.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}
