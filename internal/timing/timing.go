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

// Package timing measures workloads against the monotonic clock and reduces
// the samples to the statistics printed in reports.
//
// time.Now carries a monotonic reading and time.Since subtracts on it, so
// wall-clock adjustments during a run never produce negative samples.
package timing

import (
	"context"
	"math"
	"time"
)

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 { return d.Seconds() * 1000 }

// Since returns the milliseconds elapsed since start.
func Since(start time.Time) float64 { return Millis(time.Since(start)) }

// Time runs fn once and returns its duration in milliseconds.
func Time(fn func()) float64 {
	start := time.Now()
	fn()
	return Since(start)
}

// Measure runs fn iterations times and returns one sample per call, in
// milliseconds. The context is checked between iterations only; a call in
// progress is never interrupted. On cancellation the samples gathered so far
// are returned with ctx.Err().
func Measure(ctx context.Context, iterations int, fn func()) ([]float64, error) {
	samples := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		samples = append(samples, Time(fn))
	}
	return samples, nil
}

// Stats summarizes repeated samples of one workload.
type Stats struct {
	Samples []float64 `json:"samples_ms"`
	Best    float64   `json:"best_ms"`
	Avg     float64   `json:"avg_ms"`
	Max     float64   `json:"max_ms"`
	Total   float64   `json:"total_ms"`
}

// Summarize computes best, average, max and total. Avg is clamped into
// [Best, Max] so float rounding of the mean can never break that ordering.
// An empty input yields the zero Stats.
func Summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{
		Samples: append([]float64(nil), samples...),
		Best:    samples[0],
		Max:     samples[0],
	}
	for _, v := range samples {
		if v < s.Best {
			s.Best = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Total += v
	}
	s.Avg = s.Total / float64(len(samples))
	s.Avg = math.Min(math.Max(s.Avg, s.Best), s.Max)
	return s
}

// Throughput describes a single timed loop of many iterations.
type Throughput struct {
	Iterations int     `json:"iterations"`
	ElapsedMs  float64 `json:"elapsed_ms"`
	OpsPerSec  float64 `json:"ops_per_sec"`
}

// NewThroughput computes floor(iterations / seconds). A loop too fast for the
// clock to see (elapsed 0) reports 0 ops/sec rather than +Inf.
func NewThroughput(iterations int, elapsedMs float64) Throughput {
	t := Throughput{Iterations: iterations, ElapsedMs: elapsedMs}
	if elapsedMs > 0 {
		t.OpsPerSec = math.Floor(float64(iterations) / (elapsedMs / 1000))
	}
	return t
}

// Loop times iterations calls of fn as one region and returns the throughput.
func Loop(ctx context.Context, iterations int, fn func()) (Throughput, error) {
	if err := ctx.Err(); err != nil {
		return Throughput{Iterations: iterations}, err
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	return NewThroughput(iterations, Since(start)), nil
}
