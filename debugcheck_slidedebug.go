// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

//go:build slidedebug

package slide

import (
	"cmp"
	"fmt"
)

// checkIndexMonotone verifies i is non-decreasing, the precondition every
// *Index driver relies on for its binary searches (spec.md §4.4). The check
// is O(n) and only compiled in under the slidedebug build tag: production
// callers are expected to already satisfy it (it is typically the row order
// of a sorted table) and paying for re-verifying that on every call is not
// something the hot path should carry by default.
func checkIndexMonotone[K cmp.Ordered](i []K) error {
	for p := 1; p < len(i); p++ {
		if i[p] < i[p-1] {
			return fmt.Errorf("%w: i[%d]=%v < i[%d]=%v", ErrIndexNotMonotone, p, i[p], p-1, i[p-1])
		}
	}
	return nil
}
