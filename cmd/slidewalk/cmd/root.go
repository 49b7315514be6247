// Copyright (c) 2025 The Slide Authors
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slidewindow/slide"
)

var (
	inputPath string
	op        string
	before    int
	after     int
	step      int
	complete  bool
	naRM      bool
)

// rootCmd reads a CSV's "value" column (and, if present, its "index"
// column) and prints the windowed aggregate, one result per input row.
var rootCmd = &cobra.Command{
	Use:   "slidewalk",
	Short: "Run a sliding-window aggregate over a CSV column",
	Long: `slidewalk reads a CSV file with a "value" column and an optional
"index" column, applies one of the five slide aggregates over a sliding
window, and prints one result per row.

When the CSV has no "index" column, the window is positional: before and
after count rows. When an "index" column is present, rows sharing an index
value form a peer group, and before/after widen the window in index units
rather than row counts.`,
	Example: `  slidewalk --input testdata/sample.csv --op sum --before 2 --after 0
  slidewalk --input testdata/sample.csv --op mean --before 1 --after 1 --na-rm`,
	RunE: run,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the input CSV file (required)")
	rootCmd.Flags().StringVar(&op, "op", "sum", "aggregate: sum, prod, mean, min, or max")
	rootCmd.Flags().IntVar(&before, "before", 0, "rows/index-units before the anchor; -1 means unbounded")
	rootCmd.Flags().IntVar(&after, "after", 0, "rows/index-units after the anchor; -1 means unbounded")
	rootCmd.Flags().IntVar(&step, "step", 1, "only emit a result every step-th row (positional mode only)")
	rootCmd.Flags().BoolVar(&complete, "complete", false, "suppress windows truncated by the ends of the data")
	rootCmd.Flags().BoolVar(&naRM, "na-rm", false, "skip missing values instead of propagating them")

	_ = rootCmd.MarkFlagRequired("input")
}

func bound(v int) slide.Bound {
	if v < 0 {
		return slide.Unbounded()
	}
	return slide.Finite(v)
}

func run(c *cobra.Command, args []string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("slidewalk: %w", err)
	}
	defer f.Close()

	values, indices, hasIndex, err := readCSV(f)
	if err != nil {
		return fmt.Errorf("slidewalk: %w", err)
	}

	ctx := context.Background()

	var results []float64
	if hasIndex {
		results, err = runIndexed(ctx, values, indices)
	} else {
		results, err = runPositional(ctx, values)
	}
	if err != nil {
		return fmt.Errorf("slidewalk: %w", err)
	}

	w := c.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(w, "%v\n", r)
	}
	return nil
}

func runPositional(ctx context.Context, values []float64) ([]float64, error) {
	b, a := bound(before), bound(after)
	switch op {
	case "sum":
		return slide.Sum(ctx, values, b, a, step, complete, naRM)
	case "prod":
		return slide.Prod(ctx, values, b, a, step, complete, naRM)
	case "mean":
		return slide.Mean(ctx, values, b, a, step, complete, naRM)
	case "min":
		return slide.Min(ctx, values, b, a, step, complete, naRM)
	case "max":
		return slide.Max(ctx, values, b, a, step, complete, naRM)
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

// runIndexed groups consecutive equal index values into peer groups and
// widens each group's window by before/after index units on either side.
func runIndexed(ctx context.Context, values []float64, indices []int) ([]float64, error) {
	n := len(indices)

	var peerSizes, groupIndex []int
	pos := 0
	for pos < n {
		size := 1
		for pos+size < n && indices[pos+size] == indices[pos] {
			size++
		}
		peerSizes = append(peerSizes, size)
		for j := 1; j < size; j++ {
			peerSizes = append(peerSizes, 0)
		}
		groupIndex = append(groupIndex, indices[pos])
		pos += size
	}

	starts := make([]int, len(groupIndex))
	stops := make([]int, len(groupIndex))
	for k, v := range groupIndex {
		if before < 0 {
			starts[k] = math.MinInt
		} else {
			starts[k] = v - before
		}
		if after < 0 {
			stops[k] = math.MaxInt
		} else {
			stops[k] = v + after
		}
	}

	switch op {
	case "sum":
		return slide.SumIndex(ctx, values, indices, starts, stops, peerSizes, complete, naRM)
	case "prod":
		return slide.ProdIndex(ctx, values, indices, starts, stops, peerSizes, complete, naRM)
	case "mean":
		return slide.MeanIndex(ctx, values, indices, starts, stops, peerSizes, complete, naRM)
	case "min":
		return slide.MinIndex(ctx, values, indices, starts, stops, peerSizes, complete, naRM)
	case "max":
		return slide.MaxIndex(ctx, values, indices, starts, stops, peerSizes, complete, naRM)
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

// readCSV parses a "value" column and an optional "index" column from r.
func readCSV(r io.Reader) (values []float64, indices []int, hasIndex bool, err error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, nil, false, fmt.Errorf("reading header: %w", err)
	}

	valueCol, indexCol := -1, -1
	for idx, name := range header {
		switch name {
		case "value":
			valueCol = idx
		case "index":
			indexCol = idx
		}
	}
	if valueCol == -1 {
		return nil, nil, false, fmt.Errorf(`CSV header is missing a "value" column`)
	}
	hasIndex = indexCol != -1

	for {
		row, readErr := cr.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, false, fmt.Errorf("reading row: %w", readErr)
		}

		v, parseErr := strconv.ParseFloat(row[valueCol], 64)
		if parseErr != nil {
			return nil, nil, false, fmt.Errorf("parsing value %q: %w", row[valueCol], parseErr)
		}
		values = append(values, v)

		if hasIndex {
			iv, parseErr := strconv.Atoi(row[indexCol])
			if parseErr != nil {
				return nil, nil, false, fmt.Errorf("parsing index %q: %w", row[indexCol], parseErr)
			}
			indices = append(indices, iv)
		}
	}

	return values, indices, hasIndex, nil
}
