// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

//go:build !slidedebug

package slide

import "cmp"

// checkIndexMonotone is a no-op in production builds; see
// debugcheck_slidedebug.go for the slidedebug-tagged verification.
func checkIndexMonotone[K cmp.Ordered](i []K) error { return nil }
