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

// MatrixMultiply times an N×N integer matrix product. Allocation of the
// result is inside the timed region.
type MatrixMultiply struct {
	N          int
	Iterations int
}

// NewMatrixMultiply returns 200×200 over 3 iterations.
func NewMatrixMultiply() *MatrixMultiply {
	return &MatrixMultiply{N: 200, Iterations: 3}
}

func (*MatrixMultiply) Name() string    { return "matrix_multiply" }
func (*MatrixMultiply) Summary() string { return "dense integer matrix product, checksum C[0][0]" }

func (b *MatrixMultiply) Run(ctx context.Context) (*report.Record, error) {
	a, m := workload.NewMatrixPair(b.N)

	var product workload.Matrix
	samples, err := timing.Measure(ctx, b.Iterations, func() {
		product = workload.Multiply(a, m)
	})
	if err != nil {
		return nil, err
	}
	logSamples(b.Name(), samples)

	return report.New(b.Name()).
		AddParam("size", fmt.Sprintf("%dx%d", b.N, b.N)).
		AddParam("iterations", b.Iterations).
		AddResult("checksum", product.Checksum()).
		SetStats(timing.Summarize(samples)), nil
}
