// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package segtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumMonoid is a minimal plain-sum monoid used to exercise the tree shape
// independent of the root package's NaN-aware catalogue.
type sumMonoid struct{}

func (sumMonoid) Reset(dst *float64)  { *dst = 0 }
func (sumMonoid) Finalize(s *float64) float64 { return *s }

func (sumMonoid) CombineLeaves(leaves []float64, begin, end int, dst *float64) {
	for _, v := range leaves[begin:end] {
		*dst += v
	}
}

func (sumMonoid) CombineNodes(nodes []float64, begin, end int, dst *float64) {
	for _, v := range nodes[begin:end] {
		*dst += v
	}
}

func naiveSum(x []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(x) {
		hi = len(x)
	}
	var s float64
	for _, v := range x[lo:hi] {
		s += v
	}
	return s
}

func TestTreeAggregateMatchesNaiveSum(t *testing.T) {
	t.Parallel()

	sizes := []int{0, 1, 2, 3, 5, 8, 16, 17, 100}
	for _, n := range sizes {
		n := n
		t.Run(string(rune('a'+n%26)), func(t *testing.T) {
			t.Parallel()

			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i + 1)
			}

			tree := Build(x, sumMonoid{})
			require.Equal(t, n, tree.Len())

			for lo := 0; lo <= n; lo++ {
				for hi := lo; hi <= n; hi++ {
					var got float64
					tree.Aggregate(lo, hi, &got)
					assert.Equal(t, naiveSum(x, lo, hi), got, "lo=%d hi=%d n=%d", lo, hi, n)
				}
			}
		})
	}
}

func TestTreeAggregateEmptyWindowIsIdentity(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	tree := Build(x, sumMonoid{})

	var got float64
	tree.Aggregate(2, 2, &got)
	assert.Zero(t, got)

	tree.Aggregate(5, 9, &got)
	assert.Zero(t, got)
}

func TestTreeAggregateEmptyTreeAlwaysIdentity(t *testing.T) {
	t.Parallel()

	tree := Build[float64](nil, sumMonoid{})

	var got float64
	tree.Aggregate(0, 0, &got)
	assert.Zero(t, got)
}

func FuzzTreeAggregate(f *testing.F) {
	f.Add(int64(1), 10, 0, 10)
	f.Add(int64(42), 37, 5, 30)
	f.Add(int64(7), 1, 0, 1)

	f.Fuzz(func(t *testing.T, seed int64, n, lo, hi int) {
		if n < 0 || n > 2000 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewSource(seed))
		x := make([]float64, n)
		for i := range x {
			x[i] = prng.Float64()*200 - 100
		}

		tree := Build(x, sumMonoid{})

		var got float64
		tree.Aggregate(lo, hi, &got)

		want := naiveSum(x, lo, hi)
		assert.InDelta(t, want, got, 1e-6)
	})
}
