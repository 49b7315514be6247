// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"math"

	"github.com/slidewindow/slide/internal/segtree"
)

// prodState is a plain float64: unlike sum, product accumulation is not
// specified to need extended precision (spec.md §4.1's table only calls it
// out for sum and mean).
type prodState float64

type prodMonoid struct{ naRM bool }

func (prodMonoid) Reset(dst *prodState) { *dst = 1 }

func (prodMonoid) Finalize(s *prodState) float64 { return float64(*s) }

func (m prodMonoid) CombineLeaves(x []float64, begin, end int, dst *prodState) {
	if m.naRM {
		for _, v := range x[begin:end] {
			if !math.IsNaN(v) {
				*dst *= prodState(v)
			}
		}
		return
	}
	for _, v := range x[begin:end] {
		*dst *= prodState(v)
	}
}

func (prodMonoid) CombineNodes(nodes []prodState, begin, end int, dst *prodState) {
	for _, n := range nodes[begin:end] {
		*dst *= n
	}
}

var _ segtree.Monoid[prodState] = prodMonoid{}
