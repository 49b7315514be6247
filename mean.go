// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"math"

	"github.com/slidewindow/slide/internal/segtree"
)

// meanState carries both the running sum and the element count so partial
// aggregates stay composable across tree strata (spec.md §4.1's "mean_state_t").
type meanState struct {
	sum   kahanSum
	count uint64
}

type meanMonoid struct{ naRM bool }

func (meanMonoid) Reset(dst *meanState) { *dst = meanState{} }

// Finalize divides sum by count. An empty window (count == 0) yields
// 0/0 = NaN from plain float division, matching spec.md's table without a
// special case.
func (meanMonoid) Finalize(s *meanState) float64 {
	return s.sum.value() / float64(s.count)
}

func (m meanMonoid) CombineLeaves(x []float64, begin, end int, dst *meanState) {
	if m.naRM {
		for _, v := range x[begin:end] {
			if !math.IsNaN(v) {
				dst.sum.add(v)
				dst.count++
			}
		}
		return
	}
	for _, v := range x[begin:end] {
		dst.sum.add(v)
		dst.count++
	}
}

// CombineNodes is the same for na_keep and na_rm: both sum and count were
// already filtered when leaves were promoted into nodes.
func (meanMonoid) CombineNodes(nodes []meanState, begin, end int, dst *meanState) {
	for _, n := range nodes[begin:end] {
		dst.sum.merge(n.sum)
		dst.count += n.count
	}
}

var _ segtree.Monoid[meanState] = meanMonoid{}
