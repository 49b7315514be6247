// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package slide

import "errors"

// Sentinel errors returned by validation. Callers can test for these with
// errors.Is; the engine always wraps them with fmt.Errorf for context.
var (
	// ErrInvalidWindow is returned when before/after/step are out of range.
	ErrInvalidWindow = errors.New("slide: invalid window parameters")

	// ErrLengthMismatch is returned when parallel input slices disagree in length.
	ErrLengthMismatch = errors.New("slide: length mismatch")

	// ErrIndexNotMonotone is returned (slidedebug build only, see debugcheck_slidedebug.go) when
	// the index sequence i is not non-decreasing.
	ErrIndexNotMonotone = errors.New("slide: index is not non-decreasing")
)
