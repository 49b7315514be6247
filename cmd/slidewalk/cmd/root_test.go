// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidewalkGoldenPositional(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"--input", "testdata/positional.csv",
		"--op", "sum",
		"--before", "2",
		"--after", "0",
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "1\n3\n6\n9\n12\n", out.String())
}

func TestSlidewalkGoldenIndexed(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"--input", "testdata/sample.csv",
		"--op", "sum",
		"--before", "0",
		"--after", "0",
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "3\n3\n3\n4\n5\n", out.String())
}

func TestSlidewalkRejectsUnknownOp(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"--input", "testdata/positional.csv",
		"--op", "bogus",
	})

	require.Error(t, rootCmd.Execute())
}
