// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import "time"

// TimeKey adapts time.Time to cmp.Ordered (nanoseconds since the Unix
// epoch) for use as the index-anchored driver's key type K. time.Time
// itself has a Compare method but no natural total order under Go's
// built-in comparison operators, which the *Index family's binary search
// requires (spec.md §3's "K sort-comparable").
type TimeKey int64

// NewTimeKey converts a time.Time to a TimeKey.
func NewTimeKey(t time.Time) TimeKey { return TimeKey(t.UnixNano()) }

// Time converts a TimeKey back to a time.Time in UTC.
func (k TimeKey) Time() time.Time { return time.Unix(0, int64(k)).UTC() }
