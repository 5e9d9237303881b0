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

// Package report defines the Record produced by a benchmark run and renders it
// in the fixed text format written to stdout. The same Record is what sinks
// publish and telemetry observes.
package report

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"rtbench/internal/timing"
)

// Field is one key=value pair. Order is preserved in output.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Case is one line of a multi-case benchmark.
type Case struct {
	Label     string  `json:"label"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Fields    []Field `json:"fields,omitempty"`
}

// Record is the outcome of one benchmark run. At most one of Stats,
// Throughput or WallMs is set; multi-case records use Cases instead.
type Record struct {
	Benchmark  string             `json:"benchmark"`
	StartedAt  time.Time          `json:"started_at"`
	GoVersion  string             `json:"go_version"`
	Params     []Field            `json:"params,omitempty"`
	Results    []Field            `json:"results,omitempty"`
	Stats      *timing.Stats      `json:"stats,omitempty"`
	Throughput *timing.Throughput `json:"throughput,omitempty"`
	WallMs     *float64           `json:"wall_ms,omitempty"`
	Cases      []Case             `json:"cases,omitempty"`
}

// New starts a record for the named benchmark.
func New(benchmark string) *Record {
	return &Record{
		Benchmark: benchmark,
		StartedAt: time.Now().UTC(),
		GoVersion: runtime.Version(),
	}
}

// AddParam appends an input parameter.
func (r *Record) AddParam(key string, value any) *Record {
	r.Params = append(r.Params, Field{Key: key, Value: FormatValue(value)})
	return r
}

// AddResult appends a result (checksum) line.
func (r *Record) AddResult(key string, value any) *Record {
	r.Results = append(r.Results, Field{Key: key, Value: FormatValue(value)})
	return r
}

// AddCase appends a case line.
func (r *Record) AddCase(label string, elapsedMs float64, fields ...Field) *Record {
	r.Cases = append(r.Cases, Case{Label: label, ElapsedMs: elapsedMs, Fields: fields})
	return r
}

// SetStats attaches best/avg statistics.
func (r *Record) SetStats(s timing.Stats) *Record {
	r.Stats = &s
	return r
}

// SetThroughput attaches a time/ops_per_sec measurement.
func (r *Record) SetThroughput(t timing.Throughput) *Record {
	r.Throughput = &t
	return r
}

// SetWall attaches a single elapsed time.
func (r *Record) SetWall(ms float64) *Record {
	r.WallMs = &ms
	return r
}

// Result returns the value of the named result.
func (r *Record) Result(key string) (string, bool) { return lookup(r.Results, key) }

// Param returns the value of the named parameter.
func (r *Record) Param(key string) (string, bool) { return lookup(r.Params, key) }

func lookup(fields []Field, key string) (string, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// F builds a Field, formatting value with FormatValue.
func F(key string, value any) Field { return Field{Key: key, Value: FormatValue(value)} }

// FormatValue renders ints in decimal, bools as true/false, strings as-is and
// floats in the shortest form that round-trips. Callers that need a fixed
// precision pass an already formatted string (see Fixed).
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Fixed formats f with prec digits after the decimal point.
func Fixed(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }

// Ms formats a millisecond value the way every report line does.
func Ms(ms float64) string { return fmt.Sprintf("%.6fms", ms) }
