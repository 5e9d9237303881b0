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

package suite

import (
	"context"

	"rtbench/internal/report"
	"rtbench/internal/timing"
	"rtbench/internal/workload"
)

// FibRecursive times the doubly recursive Fibonacci, best of Iterations.
type FibRecursive struct {
	N          int
	Iterations int
	Warmup     int
}

// NewFibRecursive returns fib(35) over 5 iterations with a fib(20) warmup.
func NewFibRecursive() *FibRecursive {
	return &FibRecursive{N: 35, Iterations: 5, Warmup: 20}
}

func (*FibRecursive) Name() string    { return "fibonacci_recursive" }
func (*FibRecursive) Summary() string { return "recursive fib(n), best/avg over repeated runs" }

func (b *FibRecursive) Run(ctx context.Context) (*report.Record, error) {
	sinkInt = workload.FibRecursive(b.Warmup)
	logf("%s: warmup fib(%d) done", b.Name(), b.Warmup)

	var result int
	samples, err := timing.Measure(ctx, b.Iterations, func() {
		result = workload.FibRecursive(b.N)
	})
	if err != nil {
		return nil, err
	}
	logSamples(b.Name(), samples)

	return report.New(b.Name()).
		AddParam("n", b.N).
		AddParam("iterations", b.Iterations).
		AddResult("result", result).
		SetStats(timing.Summarize(samples)), nil
}

// FibIterative times many calls of the iterative Fibonacci as one loop and
// reports throughput.
type FibIterative struct {
	N          int
	Iterations int
	Warmup     int
}

// NewFibIterative returns fib(50) called 1,000,000 times with a fib(1000) warmup.
func NewFibIterative() *FibIterative {
	return &FibIterative{N: 50, Iterations: 1000000, Warmup: 1000}
}

func (*FibIterative) Name() string    { return "fibonacci_iterative" }
func (*FibIterative) Summary() string { return "iterative fib(n) in a tight loop, ops/sec" }

func (b *FibIterative) Run(ctx context.Context) (*report.Record, error) {
	sinkInt = workload.FibIterative(b.Warmup)

	var result int
	tp, err := timing.Loop(ctx, b.Iterations, func() {
		result = workload.FibIterative(b.N)
	})
	if err != nil {
		return nil, err
	}
	logf("%s: %d calls in %s", b.Name(), tp.Iterations, report.Ms(tp.ElapsedMs))

	return report.New(b.Name()).
		AddParam("n", b.N).
		AddParam("iterations", b.Iterations).
		AddResult("result", result).
		SetThroughput(tp), nil
}
