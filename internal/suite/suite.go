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

// Package suite wires each workload to its input generator, timing harness
// and report. Every benchmark is independent: it builds its own input, owns
// its own state and produces one report.Record.
//
// Parameters are the literal defaults set by the constructors. The fields are
// exported so tests can run the same code at small sizes.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"rtbench/internal/report"
)

// ErrUnknownBenchmark is returned by Lookup for names not in the registry.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Benchmark is one self-contained micro-benchmark.
type Benchmark interface {
	// Name is the identifier printed after "BENCHMARK:".
	Name() string
	// Summary is a one-line description for listings.
	Summary() string
	// Run builds the input, measures the workload and returns the record.
	// The context is only consulted between timed regions.
	Run(ctx context.Context) (*report.Record, error)
}

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(io.Discard, "", 0))
}

// SetLogger installs the logger used for progress lines. Progress never goes
// to the report stream. A nil logger discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

func logf(format string, args ...any) {
	logger.Load().Printf(format, args...)
}

// sinkInt keeps warmup results observable so the calls are not elided.
var sinkInt int

// All returns a fresh instance of every benchmark with default parameters,
// in a stable order.
func All() []Benchmark {
	return []Benchmark{
		NewFibRecursive(),
		NewFibIterative(),
		NewPrimeSieve(),
		NewMatrixMultiply(),
		NewArrayProcessing(),
		NewStringOperations(),
		NewNBody(),
		NewSortFloats(),
		NewTypedArrays(),
		NewJSONCodec(),
	}
}

// Names lists the registered benchmark names in registry order.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, b := range all {
		out[i] = b.Name()
	}
	return out
}

// Lookup returns the benchmark registered under name.
func Lookup(name string) (Benchmark, error) {
	for _, b := range All() {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
}

func logSamples(name string, samples []float64) {
	for i, s := range samples {
		logf("%s: iteration %d took %s", name, i+1, report.Ms(s))
	}
}
