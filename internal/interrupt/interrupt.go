// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

// Package interrupt provides the cooperative cancellation check shared by
// every driver loop.
package interrupt

import "context"

// Every is the iteration period at which driver loops poll ctx for
// cancellation (spec.md §5/§7): every 1024 output positions, not every
// position, since ctx.Err() is cheap but not free at tight-loop scale.
const Every = 1024

// Check returns ctx.Err() every Every-th iteration (i counted from 0), nil
// otherwise. Callers call this unconditionally at the top of each loop
// iteration and bail out on a non-nil result.
func Check(ctx context.Context, i int) error {
	if i%Every != 0 {
		return nil
	}
	return ctx.Err()
}
