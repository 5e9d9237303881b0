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

package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"rtbench/internal/report"
)

// FilePublisher appends records to a JSONL file. Each Publish flushes, so a
// record is on disk once Publish returns.
type FilePublisher struct {
	mu   sync.Mutex
	f    *os.File
	w    *bufio.Writer
	path string
}

// NewFilePublisher opens (or creates) path in append mode.
func NewFilePublisher(path string) (*FilePublisher, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open results file %s: %w", path, err)
	}
	return &FilePublisher{f: f, w: bufio.NewWriterSize(f, 64<<10), path: path}, nil
}

// Path is the file being appended to.
func (p *FilePublisher) Path() string { return p.path }

func (p *FilePublisher) Publish(ctx context.Context, rec *report.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := json.NewEncoder(p.w).Encode(rec); err != nil {
		return fmt.Errorf("encode %s to %s: %w", rec.Benchmark, p.path, err)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", p.path, err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (p *FilePublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.w.Flush()
	return p.f.Close()
}

// ReadAllRecords reads every record in a JSONL results file. Lines that do
// not decode are skipped.
func ReadAllRecords(path string) ([]report.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []report.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<24)
	for scanner.Scan() {
		var rec report.Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err == nil {
			out = append(out, rec)
		}
	}
	return out, scanner.Err()
}
