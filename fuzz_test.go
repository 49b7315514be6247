// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slidewindow/slide"
)

// naivePositionalSum recomputes Sum by brute force, one window at a time.
func naivePositionalSum(x []float64, before, after, step int) []float64 {
	n := len(x)
	out := make([]float64, n)
	for p := 0; p < n; p++ {
		if p%step != 0 {
			out[p] = math.NaN()
			continue
		}
		lo, hi := p-before, p+after
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}
		var s float64
		for j := lo; j <= hi; j++ {
			s += x[j]
		}
		out[p] = s
	}
	return out
}

func FuzzSum(f *testing.F) {
	f.Add(int64(1), 10, 2, 1, 1)
	f.Add(int64(7), 37, 5, 3, 2)
	f.Add(int64(42), 1, 0, 0, 1)

	f.Fuzz(func(t *testing.T, seed int64, n, before, after, step int) {
		if n < 0 || n > 500 {
			t.Skip("bounds")
		}
		if before < 0 {
			before = -before
		}
		if after < 0 {
			after = -after
		}
		if step <= 0 {
			step = 1
		}
		before %= 10
		after %= 10
		step = step%5 + 1

		prng := rand.New(rand.NewSource(seed))
		x := make([]float64, n)
		for i := range x {
			x[i] = prng.Float64()*200 - 100
		}

		got, err := slide.Sum(context.Background(), x, slide.Finite(before), slide.Finite(after), step, false, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := naivePositionalSum(x, before, after, step)
		for p := range want {
			if p%step != 0 {
				continue
			}
			assert.InDeltaf(t, want[p], got[p], 1e-6, "position %d", p)
		}
	})
}

// FuzzIndexSum checks that an index-anchored window over a one-to-one index
// (no peer ties, starts[k] == stops[k] == i[k]) reproduces the plain value
// at each position — the degenerate case where every group is a singleton
// and its own window.
func FuzzIndexSum(f *testing.F) {
	f.Add(int64(3), 20)
	f.Add(int64(11), 1)

	f.Fuzz(func(t *testing.T, seed int64, n int) {
		if n < 0 || n > 500 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewSource(seed))
		x := make([]float64, n)
		i := make([]int, n)
		peerSizes := make([]int, n)
		starts := make([]int, n)
		stops := make([]int, n)
		for p := range x {
			x[p] = prng.Float64()*200 - 100
			i[p] = p
			peerSizes[p] = 1
			starts[p] = p
			stops[p] = p
		}

		got, err := slide.SumIndex(context.Background(), x, i, starts, stops, peerSizes, false, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for p := range x {
			assert.InDeltaf(t, x[p], got[p], 1e-9, "position %d", p)
		}
	})
}
