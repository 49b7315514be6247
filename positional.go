// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"context"
	"fmt"
	"math"

	"github.com/slidewindow/slide/internal/interrupt"
	"github.com/slidewindow/slide/internal/segtree"
)

// Sum returns, for every position p in x, the na_keep/na_rm sum of
// x[p-before : p+after+1] (clamped to the sequence), per spec.md §4.3.
func Sum(ctx context.Context, x []float64, before, after Bound, step int, complete, naRM bool) ([]float64, error) {
	return slidePositional(ctx, x, before, after, step, complete, sumMonoid{naRM: naRM})
}

// Prod is the product analogue of Sum.
func Prod(ctx context.Context, x []float64, before, after Bound, step int, complete, naRM bool) ([]float64, error) {
	return slidePositional(ctx, x, before, after, step, complete, prodMonoid{naRM: naRM})
}

// Mean is the arithmetic-mean analogue of Sum.
func Mean(ctx context.Context, x []float64, before, after Bound, step int, complete, naRM bool) ([]float64, error) {
	return slidePositional(ctx, x, before, after, step, complete, meanMonoid{naRM: naRM})
}

// Min is the minimum analogue of Sum.
func Min(ctx context.Context, x []float64, before, after Bound, step int, complete, naRM bool) ([]float64, error) {
	return slidePositional(ctx, x, before, after, step, complete, minMonoid{naRM: naRM})
}

// Max is the maximum analogue of Sum.
func Max(ctx context.Context, x []float64, before, after Bound, step int, complete, naRM bool) ([]float64, error) {
	return slidePositional(ctx, x, before, after, step, complete, maxMonoid{naRM: naRM})
}

// slidePositional is the one driver loop shared by Sum/Prod/Mean/Min/Max,
// monomorphized per call site by Go generics (spec.md §9 prefers
// monomorphization over a single dispatch-by-tag loop for the hot path).
func slidePositional[S any](ctx context.Context, x []float64, before, after Bound, step int, complete bool, m segtree.Monoid[S]) ([]float64, error) {
	if err := validateWindow(step); err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	tree := segtree.Build(x, m)

	haveBefore := !before.isUnbounded()
	haveAfter := !after.isUnbounded()

	iterMin := 0
	if complete && haveBefore {
		iterMin = before.value()
	}
	iterMax := n
	if complete && haveAfter {
		iterMax = n - after.value()
	}
	if iterMax < iterMin {
		iterMax = iterMin
	}

	var start, stop int
	if haveBefore {
		start = iterMin - before.value()
	}
	if haveAfter {
		stop = iterMin + after.value()
	}

	var state S
	for i, iter := iterMin, 0; i < iterMax; i, iter = i+step, iter+1 {
		if err := interrupt.Check(ctx, iter); err != nil {
			return nil, fmt.Errorf("slide: %w", err)
		}

		windowStart := 0
		if haveBefore {
			windowStart = max(0, start)
		}
		windowStop := n
		if haveAfter {
			windowStop = min(n, stop+1)
		}

		tree.Aggregate(windowStart, windowStop, &state)
		out[i] = m.Finalize(&state)

		if haveBefore {
			start += step
		}
		if haveAfter {
			stop += step
		}
	}

	return out, nil
}
