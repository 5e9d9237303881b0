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
	"fmt"

	"rtbench/internal/report"
	"rtbench/internal/timing"
	"rtbench/internal/workload"
)

// TypedArrays runs float64 vector kernels over linspace inputs. Each case
// times Iterations calls as one region.
type TypedArrays struct {
	N          int
	MatSize    int
	Iterations int
}

// NewTypedArrays returns vectors of 1,000,000 elements, a 1000x1000 matrix
// and 100 iterations per kernel.
func NewTypedArrays() *TypedArrays {
	return &TypedArrays{N: 1000000, MatSize: 1000, Iterations: 100}
}

func (*TypedArrays) Name() string    { return "typed_arrays" }
func (*TypedArrays) Summary() string { return "float64 dot, add, norm, matvec and Kahan sum" }

func (b *TypedArrays) Run(ctx context.Context) (*report.Record, error) {
	rec := report.New(b.Name()).
		AddParam("n", b.N).
		AddParam("iterations", b.Iterations)

	a := workload.Linspace(0, 1, b.N)
	v := workload.Linspace(1, 2, b.N)

	var dot float64
	ms, err := b.timed(ctx, func() { dot = workload.Dot(a, v) })
	if err != nil {
		return nil, err
	}
	rec.AddCase("dot product", ms, report.F("result", report.Fixed(dot, 6)))

	var sum []float64
	if ms, err = b.timed(ctx, func() { sum = workload.VectorAdd(a, v) }); err != nil {
		return nil, err
	}
	rec.AddCase("vector add", ms, report.F("len", len(sum)))

	var norm float64
	if ms, err = b.timed(ctx, func() { norm = workload.Norm(a) }); err != nil {
		return nil, err
	}
	rec.AddCase("vector norm", ms, report.F("result", report.Fixed(norm, 6)))

	mat := workload.Linspace(0, 1, b.MatSize*b.MatSize)
	vec := workload.Linspace(0, 1, b.MatSize)
	var mv []float64
	if ms, err = b.timed(ctx, func() { mv = workload.MatVec(mat, vec, b.MatSize, b.MatSize) }); err != nil {
		return nil, err
	}
	rec.AddCase(fmt.Sprintf("matvec %dx%d", b.MatSize, b.MatSize), ms, report.F("rows", len(mv)))

	var kahan float64
	if ms, err = b.timed(ctx, func() { kahan = workload.KahanSum(a) }); err != nil {
		return nil, err
	}
	rec.AddCase("kahan sum", ms, report.F("result", report.Fixed(kahan, 6)))

	return rec, nil
}

func (b *TypedArrays) timed(ctx context.Context, fn func()) (float64, error) {
	samples, err := timing.Measure(ctx, b.Iterations, fn)
	if err != nil {
		return 0, err
	}
	return timing.Summarize(samples).Total, nil
}
