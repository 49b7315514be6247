// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"math"

	"github.com/slidewindow/slide/internal/segtree"
)

// maxState mirrors minState with math.Max and a -∞ identity.
type maxState float64

type maxMonoid struct{ naRM bool }

func (maxMonoid) Reset(dst *maxState) { *dst = maxState(math.Inf(-1)) }

func (maxMonoid) Finalize(s *maxState) float64 { return float64(*s) }

func (m maxMonoid) CombineLeaves(x []float64, begin, end int, dst *maxState) {
	if m.naRM {
		for _, v := range x[begin:end] {
			if !math.IsNaN(v) {
				*dst = maxState(math.Max(float64(*dst), v))
			}
		}
		return
	}
	for _, v := range x[begin:end] {
		*dst = maxState(math.Max(float64(*dst), v))
	}
}

func (maxMonoid) CombineNodes(nodes []maxState, begin, end int, dst *maxState) {
	for _, n := range nodes[begin:end] {
		*dst = maxState(math.Max(float64(*dst), float64(n)))
	}
}

var _ segtree.Monoid[maxState] = maxMonoid{}
