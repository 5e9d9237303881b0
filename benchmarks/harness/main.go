// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command harness reruns suite benchmarks several times and reports the
// run-to-run spread of each one's headline timing.
//
//	go run ./benchmarks/harness -bench nbody -repeat 5
//	go run ./benchmarks/harness -bench all -repeat 3 -small
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"sort"
	"strings"

	"rtbench/internal/report"
	"rtbench/internal/suite"
)

// headlineMs picks the one timing that best represents a run: best sample,
// loop time, wall time, or the sum of all cases.
func headlineMs(rec *report.Record) float64 {
	switch {
	case rec.Stats != nil:
		return rec.Stats.Best
	case rec.Throughput != nil:
		return rec.Throughput.ElapsedMs
	case rec.WallMs != nil:
		return *rec.WallMs
	}
	var sum float64
	for _, c := range rec.Cases {
		sum += c.ElapsedMs
	}
	return sum
}

type summary struct {
	Name   string
	Runs   []float64
	Min    float64
	P50    float64
	Max    float64
	Spread float64 // (max-min)/p50

	AllocBytes uint64 // TotalAlloc delta across all runs
}

func summarize(name string, runs []float64) summary {
	s := summary{Name: name, Runs: runs}
	if len(runs) == 0 {
		return s
	}
	s.Min = percentile(runs, 0)
	s.P50 = percentile(runs, 50)
	s.Max = percentile(runs, 100)
	if s.P50 > 0 {
		s.Spread = (s.Max - s.Min) / s.P50
	}
	return s
}

func percentile(vals []float64, p int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	idx := (len(sorted) - 1) * p / 100
	return sorted[idx]
}

// runRepeats runs b repeats times and writes one line per run plus the summary.
func runRepeats(ctx context.Context, w io.Writer, b suite.Benchmark, repeats int) (summary, error) {
	fmt.Fprintf(w, "Benchmark: %s  Repeats: %d\n", b.Name(), repeats)
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	runs := make([]float64, 0, repeats)
	for i := 0; i < repeats; i++ {
		rec, err := b.Run(ctx)
		if err != nil {
			return summarize(b.Name(), runs), fmt.Errorf("%s run %d: %w", b.Name(), i+1, err)
		}
		ms := headlineMs(rec)
		runs = append(runs, ms)
		fmt.Fprintf(w, "Run %d: %s\n", i+1, report.Ms(ms))
	}
	s := summarize(b.Name(), runs)
	fmt.Fprintf(w, "Headline min: %s  p50: %s  max: %s\n", report.Ms(s.Min), report.Ms(s.P50), report.Ms(s.Max))
	fmt.Fprintf(w, "Spread: %.1f%%\n", s.Spread*100)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	s.AllocBytes = after.TotalAlloc - before.TotalAlloc
	fmt.Fprintf(w, "Allocated: %s over %d runs\n", humanBytes(s.AllocBytes), repeats)
	fmt.Fprintf(w, "Heap in use: %s\n", humanBytes(after.HeapInuse))
	return s, nil
}

// shrink returns b with sizes small enough for a quick smoke run.
func shrink(b suite.Benchmark) suite.Benchmark {
	switch x := b.(type) {
	case *suite.FibRecursive:
		x.N = 25
	case *suite.FibIterative:
		x.Iterations = 10000
	case *suite.PrimeSieve:
		x.Limit = 100000
	case *suite.MatrixMultiply:
		x.N = 50
	case *suite.ArrayProcessing:
		x.Sizes = []int{10000}
		x.FindRepeats = 10
	case *suite.StringOperations:
		x.JoinSizes = []int{10000}
		x.SplitSizes = []int{10000}
		x.ReplaceTimes = 100
		x.SearchTimes = 1000
	case *suite.NBody:
		x.Steps = 10000
	case *suite.SortFloats:
		x.N = 10000
	case *suite.TypedArrays:
		x.N = 10000
		x.MatSize = 100
		x.Iterations = 10
	case *suite.JSONCodec:
		x.N = 1000
		x.BulkRepeats = 5
	}
	return b
}

func selectBenchmarks(name string) ([]suite.Benchmark, error) {
	if strings.EqualFold(name, "all") {
		return suite.All(), nil
	}
	b, err := suite.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []suite.Benchmark{b}, nil
}

func humanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	d := float64(b)
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	i := 0
	for d >= unit && i < len(units)-1 {
		d /= unit
		i++
	}
	return fmt.Sprintf("%.1f %s", d, units[i])
}

func main() {
	var (
		name    = flag.String("bench", "all", "benchmark name or all ("+strings.Join(suite.Names(), "|")+")")
		repeats = flag.Int("repeat", 3, "runs per benchmark")
		small   = flag.Bool("small", false, "shrink workloads for a quick smoke run")
		pprofOn = flag.Bool("pprof", false, "enable pprof on localhost:6060")
	)
	flag.Parse()

	if *pprofOn {
		go func() { _ = http.ListenAndServe("localhost:6060", nil) }()
	}
	if *repeats < 1 {
		fmt.Println("-repeat must be >= 1")
		os.Exit(2)
	}

	benches, err := selectBenchmarks(*name)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	for _, b := range benches {
		if *small {
			b = shrink(b)
		}
		if _, err := runRepeats(context.Background(), os.Stdout, b, *repeats); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}
