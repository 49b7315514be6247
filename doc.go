// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

// Package slide provides sliding-window aggregation over numeric sequences.
//
// Given a sequence of float64 values and a window definition, slide computes,
// for every output position, a summary (sum, product, mean, min or max) of
// the values whose positions fall inside that position's window. Two window
// shapes are supported:
//
//   - Positional windows ([Sum], [Prod], [Mean], [Min], [Max]): the window
//     for output position p is [p-before, p+after], clamped to the sequence.
//   - Index-anchored windows ([SumIndex], [ProdIndex], [MeanIndex],
//     [MinIndex], [MaxIndex]): the window for output group k is every input
//     position j whose index value i[j] falls in [starts[k], stops[k]],
//     with ties in i ("peer groups") resolved atomically and fanned out to
//     every member of the group.
//
// Every monoid has na_keep and na_rm variants: na_keep propagates NaN
// (any NaN contributor makes the whole window NaN), na_rm skips NaN inputs.
//
// Internally every aggregate is answered by a generic segment tree
// ([internal/segtree]) built once per call in O(n) and queried in O(log n)
// per output window, so a call over n inputs and n windows runs in
// O(n log n) rather than the O(n*window) naive sliding sum.
//
// slide is synchronous and allocates no shared mutable state: each call
// builds its own tree and its own output slice. Every aggregation function
// takes a context.Context as its first argument and polls it for
// cancellation every 1024 driver-loop iterations.
package slide
