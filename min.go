// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"math"

	"github.com/slidewindow/slide/internal/segtree"
)

// minState is a plain float64; math.Min already gives NaN-propagating
// semantics for na_keep ("if any argument is NaN, Min returns NaN"), so no
// extra bookkeeping is needed beyond skipping NaN for na_rm.
type minState float64

type minMonoid struct{ naRM bool }

func (minMonoid) Reset(dst *minState) { *dst = minState(math.Inf(1)) }

func (minMonoid) Finalize(s *minState) float64 { return float64(*s) }

func (m minMonoid) CombineLeaves(x []float64, begin, end int, dst *minState) {
	if m.naRM {
		for _, v := range x[begin:end] {
			if !math.IsNaN(v) {
				*dst = minState(math.Min(float64(*dst), v))
			}
		}
		return
	}
	for _, v := range x[begin:end] {
		*dst = minState(math.Min(float64(*dst), v))
	}
}

// CombineNodes is the same for both variants: NaN handling already
// happened at the leaf stratum.
func (minMonoid) CombineNodes(nodes []minState, begin, end int, dst *minState) {
	for _, n := range nodes[begin:end] {
		*dst = minState(math.Min(float64(*dst), float64(n)))
	}
}

var _ segtree.Monoid[minState] = minMonoid{}
