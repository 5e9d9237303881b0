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

// Package sink publishes finished benchmark records to optional destinations:
// a JSONL results file, Redis and the process log.
//
// Publishing is opt-in. A run with no sinks configured uses Nop and writes
// nothing outside the stdout report.
package sink

import (
	"context"
	"errors"

	"rtbench/internal/report"
)

var (
	// ErrNoPath is returned when the file adapter is selected without a path.
	ErrNoPath = errors.New("sink: results file path is empty")
	// ErrUnknownAdapter is returned by Build for an unrecognised adapter name.
	ErrUnknownAdapter = errors.New("sink: unknown adapter")
)

// Publisher receives each finished record.
//
// Publish must be safe to call from one goroutine at a time; Close releases
// any file handle or client and is called once at the end of the run.
type Publisher interface {
	Publish(ctx context.Context, rec *report.Record) error
	Close() error
}

// Nop discards every record.
type Nop struct{}

func (Nop) Publish(context.Context, *report.Record) error { return nil }
func (Nop) Close() error                                  { return nil }
