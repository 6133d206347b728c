package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/dustin/go-humanize"
	"github.com/future-architect/intersect"
	"github.com/future-architect/intersect/datagen"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

type benchResult struct {
	Kernel    intersect.Kernel
	Histogram *hdrhistogram.Histogram
	Matches   int
}

// runBench calls IntersectMany iterations times per kernel over lists and
// records each call's latency in nanoseconds. Every kernel must return the
// same intersection.
func runBench(lists [][]uint64, kernels []intersect.Kernel, iterations int) ([]benchResult, error) {
	var expected []uint64
	results := make([]benchResult, 0, len(kernels))
	for i, kernel := range kernels {
		histogram := hdrhistogram.New(1, int64(time.Minute), 3)
		var got []uint64
		for j := 0; j < iterations; j++ {
			start := time.Now()
			got = intersect.IntersectMany(lists, kernel)
			elapsed := time.Since(start).Nanoseconds()
			if err := histogram.RecordValue(max(elapsed, 1)); err != nil {
				return nil, err
			}
		}
		if i == 0 {
			expected = got
		} else if !slices.Equal(expected, got) {
			return nil, fmt.Errorf("%s returned %d values, %s returned %d", kernel, len(got), kernels[0], len(expected))
		}
		results = append(results, benchResult{
			Kernel:    kernel,
			Histogram: histogram,
			Matches:   len(got),
		})
	}
	return results, nil
}

func renderBench(w io.Writer, results []benchResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kernel", "Calls", "Matches", "Mean", "P50", "P99", "Max"})
	for _, result := range results {
		h := result.Histogram
		table.Append([]string{
			result.Kernel.String(),
			humanize.Comma(h.TotalCount()),
			humanize.Comma(int64(result.Matches)),
			time.Duration(h.Mean()).String(),
			time.Duration(h.ValueAtQuantile(50)).String(),
			time.Duration(h.ValueAtQuantile(99)).String(),
			time.Duration(h.Max()).String(),
		})
	}
	table.Render()
}

func bench(logger *zap.Logger) error {
	kernels := intersect.Kernels()
	if len(*benchKernels) > 0 {
		kernels = kernels[:0]
		for _, name := range *benchKernels {
			kernel, _ := intersect.ParseKernel(name)
			kernels = append(kernels, kernel)
		}
	}
	if *benchCount < 1 || *benchSize < 1 || *benchIterations < 1 {
		return fmt.Errorf("count, size and iterations must be positive")
	}
	lists := datagen.Generate(*benchSeed, *benchCount, *benchSize)
	logger.Info("dataset generated",
		zap.Int("count", *benchCount),
		zap.Int("size", *benchSize),
		zap.Uint64("seed", *benchSeed),
		zap.String("bytes", humanize.Bytes(uint64(*benchCount**benchSize*8))))

	results, err := runBench(lists, kernels, *benchIterations)
	if err != nil {
		return err
	}
	renderBench(os.Stdout, results)
	return nil
}
