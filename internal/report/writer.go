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

package report

import (
	"fmt"
	"io"
	"strings"
)

// Writer renders records to an output stream.
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer) *Writer { return &Writer{out: out} }

// Write renders r. The whole report is built first and written in one call.
func (w *Writer) Write(r *Record) error {
	_, err := io.WriteString(w.out, Render(r))
	return err
}

// Render returns the text report for r:
//
//	BENCHMARK: <name>
//	<k>=<v>, <k>=<v>        (params, if any)
//	<k>=<v>                 (one line per result)
//	best=<ms>ms / avg=<ms>ms, or time=<ms>ms / ops_per_sec=<n>, or time=<ms>ms
//	  <label>: <ms>ms, <k>=<v>  (one line per case)
func Render(r *Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BENCHMARK: %s\n", r.Benchmark)

	if len(r.Params) > 0 {
		for i, p := range r.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Key)
			sb.WriteByte('=')
			sb.WriteString(p.Value)
		}
		sb.WriteByte('\n')
	}

	for _, f := range r.Results {
		fmt.Fprintf(&sb, "%s=%s\n", f.Key, f.Value)
	}

	switch {
	case r.Stats != nil:
		fmt.Fprintf(&sb, "best=%s\n", Ms(r.Stats.Best))
		fmt.Fprintf(&sb, "avg=%s\n", Ms(r.Stats.Avg))
	case r.Throughput != nil:
		fmt.Fprintf(&sb, "time=%s\n", Ms(r.Throughput.ElapsedMs))
		fmt.Fprintf(&sb, "ops_per_sec=%.0f\n", r.Throughput.OpsPerSec)
	case r.WallMs != nil:
		fmt.Fprintf(&sb, "time=%s\n", Ms(*r.WallMs))
	}

	for _, c := range r.Cases {
		fmt.Fprintf(&sb, "  %s: %s", c.Label, Ms(c.ElapsedMs))
		for _, f := range c.Fields {
			fmt.Fprintf(&sb, ", %s=%s", f.Key, f.Value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
