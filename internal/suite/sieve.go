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

// PrimeSieve times the sieve of Eratosthenes up to Limit.
type PrimeSieve struct {
	Limit      int
	Iterations int
	Warmup     int
}

// NewPrimeSieve returns a 10,000,000 limit over 5 iterations.
func NewPrimeSieve() *PrimeSieve {
	return &PrimeSieve{Limit: 10000000, Iterations: 5, Warmup: 1000}
}

func (*PrimeSieve) Name() string    { return "prime_sieve" }
func (*PrimeSieve) Summary() string { return "sieve of Eratosthenes prime count" }

func (b *PrimeSieve) Run(ctx context.Context) (*report.Record, error) {
	sinkInt = workload.Sieve(b.Warmup)

	var primes int
	samples, err := timing.Measure(ctx, b.Iterations, func() {
		primes = workload.Sieve(b.Limit)
	})
	if err != nil {
		return nil, err
	}
	logSamples(b.Name(), samples)

	return report.New(b.Name()).
		AddParam("limit", b.Limit).
		AddParam("iterations", b.Iterations).
		AddResult("primes_found", primes).
		SetStats(timing.Summarize(samples)), nil
}
