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

// JSONCodec encodes and decodes N user records one document at a time, then
// decodes the whole set as one array BulkRepeats times.
type JSONCodec struct {
	N           int
	BulkRepeats int
}

// NewJSONCodec returns 100,000 users and 100 bulk decodes.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{N: 100000, BulkRepeats: 100}
}

func (*JSONCodec) Name() string    { return "json_codec" }
func (*JSONCodec) Summary() string { return "encoding/json marshal and unmarshal of user records" }

func (b *JSONCodec) Run(ctx context.Context) (*report.Record, error) {
	users := workload.NewUsers(b.N)
	rec := report.New(b.Name()).
		AddParam("n", b.N).
		AddParam("bulk_repeats", b.BulkRepeats)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var docs [][]byte
	var err error
	ms := timing.Time(func() { docs, err = workload.MarshalEach(users) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	size := 0
	for _, d := range docs {
		size += len(d)
	}
	rec.AddCase(fmt.Sprintf("marshal %d objects", b.N), ms, report.F("bytes", size))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var parsed []workload.User
	ms = timing.Time(func() { parsed, err = workload.UnmarshalEach(docs) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	rec.AddCase(fmt.Sprintf("unmarshal %d objects", b.N), ms,
		report.F("roundtrip", workload.UsersEqual(users, parsed)))

	bulk, err := workload.MarshalBulk(users)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	var bulkErr error
	samples, err := timing.Measure(ctx, b.BulkRepeats, func() {
		if _, e := workload.UnmarshalBulk(bulk); e != nil {
			bulkErr = e
		}
	})
	if err != nil {
		return nil, err
	}
	if bulkErr != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), bulkErr)
	}
	st := timing.Summarize(samples)
	logSamples(b.Name(), samples)
	rec.AddCase(fmt.Sprintf("unmarshal %dKB x%d", len(bulk)/1024, b.BulkRepeats), st.Total,
		report.F("each", report.Ms(st.Avg)))

	return rec, nil
}
