// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

// Package peer derives peer-group boundaries from a peer_sizes vector and
// locates, for an index-anchored window, the input positions it covers —
// the two pieces of bookkeeping spec.md §4.4 calls the index driver's
// hardest bugs to reproduce.
package peer

import (
	"cmp"
	"sort"
)

// Info holds, for every input position p, the first (Starts[p]) and last
// (Stops[p]) input position of the peer group p belongs to.
type Info struct {
	Starts []int
	Stops  []int

	// GroupFirst[k] is the first input position of the k-th distinct peer
	// group, in index order; GroupSize[k] is that group's size. Both have
	// length equal to the number of distinct groups.
	GroupFirst []int
	GroupSize  []int
}

// Derive walks peerSizes once and fills in Info. peerSizes must have one
// entry per input position, with sum(peerSizes) == len(peerSizes); only the
// value at each group's first position is consulted, per spec.md §3.
func Derive(peerSizes []int) Info {
	n := len(peerSizes)
	info := Info{Starts: make([]int, n), Stops: make([]int, n)}

	pos := 0
	for pos < n {
		size := peerSizes[pos]
		stop := pos + size - 1
		for j := pos; j <= stop; j++ {
			info.Starts[j] = pos
			info.Stops[j] = stop
		}
		info.GroupFirst = append(info.GroupFirst, pos)
		info.GroupSize = append(info.GroupSize, size)
		pos += size
	}

	return info
}

// LocateStart returns the smallest input position p such that
// i[peerStarts[p]] >= target, or len(i) if no such position exists
// (spec.md §4.4's locate_peer_starts).
func LocateStart[K cmp.Ordered](i []K, peerStarts []int, target K) int {
	n := len(i)
	return sort.Search(n, func(p int) bool {
		return i[peerStarts[p]] >= target
	})
}

// LocateStop returns the largest input position p such that
// i[peerStops[p]] <= target, or -1 if no such position exists
// (spec.md §4.4's locate_peer_stops).
func LocateStop[K cmp.Ordered](i []K, peerStops []int, target K) int {
	n := len(i)
	// First position where i[peerStops[p]] > target; everything before it
	// satisfies <= target, since i (and hence peerStops' lookups) is
	// non-decreasing.
	firstAbove := sort.Search(n, func(p int) bool {
		return i[peerStops[p]] > target
	})
	return firstAbove - 1
}
