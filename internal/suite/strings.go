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

// StringOperations runs join, split, replace and substring search.
type StringOperations struct {
	JoinSizes    []int
	SplitSizes   []int
	ReplaceTimes int
	SearchTimes  int
}

// NewStringOperations returns joins/splits of 100,000 and 1,000,000 parts,
// 10,000 replaces and 100,000 searches.
func NewStringOperations() *StringOperations {
	return &StringOperations{
		JoinSizes:    []int{100000, 1000000},
		SplitSizes:   []int{100000, 1000000},
		ReplaceTimes: 10000,
		SearchTimes:  100000,
	}
}

func (*StringOperations) Name() string    { return "string_operations" }
func (*StringOperations) Summary() string { return "string join, split, replace and contains" }

func (b *StringOperations) Run(ctx context.Context) (*report.Record, error) {
	rec := report.New(b.Name())

	for _, n := range b.JoinSizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parts := workload.DecimalParts(n)
		var joined string
		ms := timing.Time(func() { joined = workload.JoinParts(parts) })
		rec.AddCase(fmt.Sprintf("join %d strings", n), ms, report.F("len", len(joined)))
	}

	for _, n := range b.SplitSizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		big := workload.JoinParts(workload.DecimalParts(n))
		var tokens []string
		ms := timing.Time(func() { tokens = workload.SplitTokens(big) })
		rec.AddCase(fmt.Sprintf("split %d tokens", n), ms, report.F("count", len(tokens)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := workload.ReplaceBase()
	var replaced string
	ms := timing.Time(func() { replaced = workload.ReplaceRepeated(base, "world", "tova", b.ReplaceTimes) })
	rec.AddCase(fmt.Sprintf("replace x%d", b.ReplaceTimes), ms)
	logf("%s: replaced length %d", b.Name(), len(replaced))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	haystack := workload.SearchHaystack()
	var found int
	ms = timing.Time(func() { found = workload.ContainsRepeated(haystack, "fghij", b.SearchTimes) })
	rec.AddCase(fmt.Sprintf("contains x%d", b.SearchTimes), ms, report.F("found", found))

	return rec, nil
}
