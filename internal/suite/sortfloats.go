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

// SortFloats times sorting N seeded pseudo-random floats, then verifies the
// order outside the timed region.
type SortFloats struct {
	N     int
	Seed  uint64
	Scale float64
}

// NewSortFloats returns 1,000,000 values in [0, 1e6) from seed 1.
func NewSortFloats() *SortFloats {
	return &SortFloats{N: 1000000, Seed: 1, Scale: 1e6}
}

func (*SortFloats) Name() string    { return "sort_floats" }
func (*SortFloats) Summary() string { return "sort of seeded random float64s with an order check" }

func (b *SortFloats) Run(ctx context.Context) (*report.Record, error) {
	data := workload.RandomFloats(b.N, b.Seed, b.Scale)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ms := timing.Time(func() { workload.SortFloats(data) })
	sorted := workload.FloatsSorted(data)
	if !sorted {
		logf("%s: output is not sorted", b.Name())
	}

	return report.New(b.Name()).
		AddParam("n", b.N).
		AddParam("seed", b.Seed).
		AddResult("sorted", sorted).
		SetWall(ms), nil
}
