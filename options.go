// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import "fmt"

// Bound is a window edge for the positional driver: a non-negative offset,
// or unbounded (the "+∞" of spec.md's "int ≥ 0 or +∞").
type Bound struct {
	n         int
	unbounded bool
}

// Finite returns a bound of exactly n positions. Panics if n is negative,
// since a negative before/after is a caller bug rather than a runtime
// condition worth threading through every call site.
func Finite(n int) Bound {
	if n < 0 {
		panic("slide: Finite bound must be >= 0")
	}
	return Bound{n: n}
}

// Unbounded returns the "+∞" bound: the window extends to the sequence edge.
func Unbounded() Bound {
	return Bound{unbounded: true}
}

func (b Bound) isUnbounded() bool { return b.unbounded }

// value panics if called on an unbounded Bound; callers must check
// isUnbounded first. Kept unexported: Bound's whole point is that finite-ness
// is checked once, at the edges of the driver, not scattered through it.
func (b Bound) value() int {
	if b.unbounded {
		panic("slide: value called on an unbounded Bound")
	}
	return b.n
}

func validateWindow(step int) error {
	if step < 1 {
		return fmt.Errorf("%w: step must be >= 1, got %d", ErrInvalidWindow, step)
	}
	return nil
}
