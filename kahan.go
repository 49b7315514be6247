// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import "math"

// kahanSum is a Kahan-compensated running sum. Go has no 80-bit extended
// or double-double type, so this is our stand-in for the original engine's
// long double accumulator (spec.md §4.1): it recovers most of the rounding
// error a plain float64 accumulation loses over long leaf ranges, without
// changing the reduction order the spec ties reproducibility to.
type kahanSum struct {
	sum float64
	c   float64 // running compensation for lost low-order bits
}

// add folds v into the sum. NaN and ±Inf propagate through unchanged, same
// as plain float64 addition, since the compensation term only ever
// corrects finite rounding error.
func (k *kahanSum) add(v float64) {
	y := v - k.c
	t := k.sum + y
	if math.IsInf(t, 0) || math.IsNaN(t) {
		k.sum, k.c = t, 0
		return
	}
	k.c = (t - k.sum) - y
	k.sum = t
}

// merge folds another compensated sum into k, combining both the visible
// sum and its compensation term.
func (k *kahanSum) merge(other kahanSum) {
	k.add(other.sum)
	k.add(other.c)
}

func (k kahanSum) value() float64 { return k.sum }
