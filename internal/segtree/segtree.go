// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

// Package segtree implements a generic segment tree over a read-only
// float64 leaf sequence, parameterized by an associative monoid.
//
// The tree is built once in O(n) and answers arbitrary [lo, hi) range
// aggregates in O(log n), using the monoid's own combiners for the leaf
// stratum (reading directly from the input, never copied into the tree)
// and for every stratum above it.
package segtree

// Monoid describes an associative aggregation operation over float64
// leaves, with a possibly distinct internal node representation S.
//
// S plays double duty as both the segment tree's internal node type and
// the accumulator used during a single range query — per-monoid these
// always coincide (see the catalogue in the root package), so there is no
// separate State type parameter.
type Monoid[S any] interface {
	// Reset sets dst to the monoid identity.
	Reset(dst *S)

	// CombineLeaves folds leaves[begin:end] into dst. dst is not reset
	// first; callers that want a fresh fold must call Reset themselves.
	CombineLeaves(leaves []float64, begin, end int, dst *S)

	// CombineNodes folds nodes[begin:end] into dst, same contract as
	// CombineLeaves but one stratum up.
	CombineNodes(nodes []S, begin, end int, dst *S)

	// Finalize reduces an accumulator to the double the caller sees.
	Finalize(s *S) float64
}

// Tree is a segment tree over a fixed leaf sequence x, built for one
// particular Monoid. It is immutable after Build and safe for concurrent
// read-only use (concurrent Aggregate calls with distinct dst accumulators).
type Tree[S any] struct {
	x     []float64
	nodes []S // 1-indexed; nodes[1:leafBase] are the internal strata
	n     int
	leafBase int // L: power-of-two leaf capacity; leaf i lives at tree position leafBase+i
	m     Monoid[S]
}

// Build constructs a segment tree over x for monoid m. x is retained, not
// copied; the caller must not mutate it while the tree is in use.
func Build[S any](x []float64, m Monoid[S]) *Tree[S] {
	t := &Tree[S]{x: x, n: len(x), m: m}

	if t.n == 0 {
		return t
	}

	leafBase := 1
	for leafBase < t.n {
		leafBase <<= 1
	}
	t.leafBase = leafBase

	if leafBase <= 1 {
		// A single leaf needs no internal nodes at all: the only possible
		// range query is [0,1), answered straight from the leaf stratum.
		return t
	}

	nodes := make([]S, leafBase)

	// Lowest internal level: pairs of leaves (padding beyond n is identity).
	for k := leafBase / 2; k < leafBase; k++ {
		begin := 2*k - leafBase
		m.Reset(&nodes[k])
		if begin >= t.n {
			continue // both children are padding: stays at identity
		}
		end := begin + 2
		if end > t.n {
			end = t.n
		}
		m.CombineLeaves(x, begin, end, &nodes[k])
	}

	// Upper levels: pairs of nodes.
	for k := leafBase/2 - 1; k >= 1; k-- {
		m.Reset(&nodes[k])
		m.CombineNodes(nodes, 2*k, 2*k+2, &nodes[k])
	}

	t.nodes = nodes
	return t
}

// Aggregate folds the range [lo, hi) into dst, which is reset first. An
// empty or fully out-of-range window leaves dst at the monoid identity.
func (t *Tree[S]) Aggregate(lo, hi int, dst *S) {
	t.m.Reset(dst)

	if t.n == 0 {
		return
	}
	if lo < 0 {
		lo = 0
	}
	if hi > t.n {
		hi = t.n
	}
	if lo >= hi {
		return
	}

	l := lo + t.leafBase
	r := hi + t.leafBase

	for l < r {
		if l&1 == 1 {
			t.foldPosition(l, dst)
			l++
		}
		if r&1 == 1 {
			r--
			t.foldPosition(r, dst)
		}
		l >>= 1
		r >>= 1
	}
}

// foldPosition folds the single tree position pos into dst, dispatching to
// the leaf or node combiner depending on which stratum pos currently lands
// in — a position starts in the leaf stratum and may move into the node
// strata as the query loop halves it.
func (t *Tree[S]) foldPosition(pos int, dst *S) {
	if pos >= t.leafBase {
		i := pos - t.leafBase
		t.m.CombineLeaves(t.x, i, i+1, dst)
		return
	}
	t.m.CombineNodes(t.nodes, pos, pos+1, dst)
}

// Len returns the number of leaves the tree was built over.
func (t *Tree[S]) Len() int { return t.n }
