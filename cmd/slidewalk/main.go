// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

// Command slidewalk runs a sliding-window aggregate over a CSV column from
// the command line, as a thin demonstration of the slide package.
package main

import "github.com/slidewindow/slide/cmd/slidewalk/cmd"

func main() {
	cmd.Execute()
}
