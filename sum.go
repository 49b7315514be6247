// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"math"

	"github.com/slidewindow/slide/internal/segtree"
)

// sumState is both the segment tree's node type and its query accumulator
// for the sum monoid: identity 0, leaf-combine folds x (propagating or
// skipping NaN per variant), node-combine is identical for both variants.
type sumState struct {
	kahanSum
}

type sumMonoid struct{ naRM bool }

func (sumMonoid) Reset(dst *sumState) { *dst = sumState{} }

func (sumMonoid) Finalize(s *sumState) float64 { return s.value() }

func (m sumMonoid) CombineLeaves(x []float64, begin, end int, dst *sumState) {
	if m.naRM {
		for _, v := range x[begin:end] {
			if !math.IsNaN(v) {
				dst.add(v)
			}
		}
		return
	}
	for _, v := range x[begin:end] {
		dst.add(v)
	}
}

// CombineNodes is the same for na_keep and na_rm: NaN handling already
// happened when leaves were promoted into nodes (spec.md §4.1).
func (sumMonoid) CombineNodes(nodes []sumState, begin, end int, dst *sumState) {
	for _, n := range nodes[begin:end] {
		dst.merge(n.kahanSum)
	}
}

var (
	_ segtree.Monoid[sumState] = sumMonoid{}
)
