// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path value type shared by enumeration, costing and orchestration.

package core

import (
	"strconv"
	"strings"
)

// Path is an ordered sequence of vertex IDs. A well-formed Path has at least
// one element, no repeated IDs, and consecutive elements joined by an edge.
// Path values are not tied to a Graph; validity is checked by consumers.
type Path []int

// Source returns the first vertex, or -1 for an empty path.
func (p Path) Source() int {
	if len(p) == 0 {
		return -1
	}

	return p[0]
}

// Destination returns the last vertex, or -1 for an empty path.
func (p Path) Destination() int {
	if len(p) == 0 {
		return -1
	}

	return p[len(p)-1]
}

// Hops returns the number of edges traversed by p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Reverse returns a new Path with the elements of p in reverse order.
func (p Path) Reverse() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, id := range p {
		out[len(p)-1-i] = id
	}

	return out
}

// Equal reports whether p and q hold the same IDs in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	return append(Path(nil), p...)
}

// String renders p as "[1, 2, 3]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte(']')

	return b.String()
}
