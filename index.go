// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import (
	"cmp"
	"context"
	"fmt"
	"math"

	"github.com/slidewindow/slide/internal/interrupt"
	"github.com/slidewindow/slide/internal/peer"
	"github.com/slidewindow/slide/internal/segtree"
)

// SumIndex returns, for every input row, the na_keep/na_rm sum over the
// index-anchored window its peer group resolves to (spec.md §4.4), fanned
// out so every row sharing a peer-group key gets the same value.
func SumIndex[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	fanned, _, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, sumMonoid{naRM: naRM})
	return fanned, err
}

// SumIndexGroups is SumIndex's length-m counterpart (spec.md §9's optional
// efficiency form): one result per output peer group, not fanned out.
func SumIndexGroups[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	_, groups, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, sumMonoid{naRM: naRM})
	return groups, err
}

// ProdIndex is the product analogue of SumIndex.
func ProdIndex[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	fanned, _, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, prodMonoid{naRM: naRM})
	return fanned, err
}

// ProdIndexGroups is ProdIndex's length-m counterpart.
func ProdIndexGroups[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	_, groups, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, prodMonoid{naRM: naRM})
	return groups, err
}

// MeanIndex is the arithmetic-mean analogue of SumIndex.
func MeanIndex[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	fanned, _, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, meanMonoid{naRM: naRM})
	return fanned, err
}

// MeanIndexGroups is MeanIndex's length-m counterpart.
func MeanIndexGroups[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	_, groups, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, meanMonoid{naRM: naRM})
	return groups, err
}

// MinIndex is the minimum analogue of SumIndex.
func MinIndex[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	fanned, _, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, minMonoid{naRM: naRM})
	return fanned, err
}

// MinIndexGroups is MinIndex's length-m counterpart.
func MinIndexGroups[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	_, groups, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, minMonoid{naRM: naRM})
	return groups, err
}

// MaxIndex is the maximum analogue of SumIndex.
func MaxIndex[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	fanned, _, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, maxMonoid{naRM: naRM})
	return fanned, err
}

// MaxIndexGroups is MaxIndex's length-m counterpart.
func MaxIndexGroups[K cmp.Ordered](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete, naRM bool) ([]float64, error) {
	_, groups, err := slideIndex(ctx, x, i, starts, stops, peerSizes, complete, maxMonoid{naRM: naRM})
	return groups, err
}

// groupWindow is the resolved [start, stop) input-position range for one
// output peer group, plus whether that group's window is exact (not
// truncated by the ends of i, and not itself empty).
type groupWindow struct {
	start, stop int
	exact       bool
}

// slideIndex is the one driver shared by every *Index/*IndexGroups pair. It
// returns both the length-n fan-out (spec.md §4.4's required default) and
// the length-m per-group result (spec.md §9's optional form), computing
// both from the same pass so neither caller pays twice.
func slideIndex[K cmp.Ordered, S any](ctx context.Context, x []float64, i, starts, stops []K, peerSizes []int, complete bool, m segtree.Monoid[S]) (fanned, groups []float64, err error) {
	n := len(x)

	if len(i) != n {
		return nil, nil, fmt.Errorf("%w: len(i)=%d != len(x)=%d", ErrLengthMismatch, len(i), n)
	}
	if err := checkIndexMonotone(i); err != nil {
		return nil, nil, fmt.Errorf("slide: %w", err)
	}
	if len(peerSizes) != n {
		return nil, nil, fmt.Errorf("%w: len(peerSizes)=%d != len(x)=%d", ErrLengthMismatch, len(peerSizes), n)
	}
	if len(starts) != len(stops) {
		return nil, nil, fmt.Errorf("%w: len(starts)=%d != len(stops)=%d", ErrLengthMismatch, len(starts), len(stops))
	}

	var peerSizeSum int
	for _, s := range peerSizes {
		peerSizeSum += s
	}
	if peerSizeSum != n {
		return nil, nil, fmt.Errorf("%w: sum(peerSizes)=%d != len(x)=%d", ErrLengthMismatch, peerSizeSum, n)
	}
	for pos := 0; pos < n; pos += peerSizes[pos] {
		if s := peerSizes[pos]; s < 1 || pos+s > n {
			return nil, nil, fmt.Errorf("%w: peer group at position %d has size %d", ErrLengthMismatch, pos, s)
		}
	}

	info := peer.Derive(peerSizes)
	numGroups := len(starts)
	if len(info.GroupFirst) != numGroups {
		return nil, nil, fmt.Errorf("%w: %d distinct peer groups but len(starts)=%d", ErrLengthMismatch, len(info.GroupFirst), numGroups)
	}

	fanned = make([]float64, n)
	for idx := range fanned {
		fanned[idx] = math.NaN()
	}
	groups = make([]float64, numGroups)
	for idx := range groups {
		groups[idx] = math.NaN()
	}

	tree := segtree.Build(x, m)

	windows := make([]groupWindow, numGroups)
	for k := 0; k < numGroups; k++ {
		if err := interrupt.Check(ctx, k); err != nil {
			return nil, nil, fmt.Errorf("slide: %w", err)
		}

		startsPos := peer.LocateStart(i, info.Starts, starts[k])
		stopsPos := peer.LocateStop(i, info.Stops, stops[k])

		if stopsPos < startsPos {
			windows[k] = groupWindow{} // empty window: identity, never "exact"
			continue
		}

		exact := n > 0 && !(starts[k] < i[0] || stops[k] > i[n-1])
		windows[k] = groupWindow{
			start: info.Starts[startsPos],
			stop:  info.Stops[stopsPos] + 1,
			exact: exact,
		}
	}

	iterMin, iterMax := 0, numGroups
	if complete {
		for iterMin < iterMax && !windows[iterMin].exact {
			iterMin++
		}
		for iterMax > iterMin && !windows[iterMax-1].exact {
			iterMax--
		}
	}

	var state S
	for k := iterMin; k < iterMax; k++ {
		if err := interrupt.Check(ctx, k); err != nil {
			return nil, nil, fmt.Errorf("slide: %w", err)
		}

		tree.Aggregate(windows[k].start, windows[k].stop, &state)
		result := m.Finalize(&state)
		groups[k] = result

		first := info.GroupFirst[k]
		for j := 0; j < info.GroupSize[k]; j++ {
			fanned[first+j] = result
		}
	}

	return fanned, groups, nil
}
