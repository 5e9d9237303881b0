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

// ArrayProcessing runs the collection cases once each, per size:
// map/filter/reduce, sort of a descending range, and a repeated linear find
// of the last element.
type ArrayProcessing struct {
	Sizes       []int
	FindRepeats int
}

// NewArrayProcessing returns sizes 100,000 and 1,000,000 with 100 finds.
func NewArrayProcessing() *ArrayProcessing {
	return &ArrayProcessing{Sizes: []int{100000, 1000000}, FindRepeats: 100}
}

func (*ArrayProcessing) Name() string { return "array_processing" }

func (*ArrayProcessing) Summary() string {
	return "map/filter/reduce, sort and linear search over int slices"
}

func (b *ArrayProcessing) Run(ctx context.Context) (*report.Record, error) {
	rec := report.New(b.Name())

	for _, size := range b.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data := workload.Range(size)
		var result int
		ms := timing.Time(func() { result = workload.MapFilterReduce(data) })
		if want := workload.SquareSumNonMultiplesOf3(size); result != want {
			logf("%s: map/filter/reduce(%d) = %d, closed form %d", b.Name(), size, result, want)
		}
		rec.AddCase(fmt.Sprintf("map/filter/reduce (%d items)", size), ms, report.F("result", result))
	}

	for _, size := range b.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data := workload.DescendingRange(size)
		ms := timing.Time(func() { workload.SortInts(data) })
		first, last := 0, 0
		if size > 0 {
			first, last = data[0], data[size-1]
		}
		rec.AddCase(fmt.Sprintf("sort (%d items)", size), ms, report.F("first", first), report.F("last", last))
	}

	for _, size := range b.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data := workload.Range(size)
		var found int
		ms := timing.Time(func() { found = workload.FindRepeated(data, size-1, b.FindRepeats) })
		rec.AddCase(fmt.Sprintf("find x%d (%d items)", b.FindRepeats, size), ms, report.F("found", found))
	}

	for _, c := range rec.Cases {
		logf("%s: %s took %s", b.Name(), c.Label, report.Ms(c.ElapsedMs))
	}
	return rec, nil
}
