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

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"rtbench/internal/report"
	"rtbench/internal/sink"
	"rtbench/internal/suite"
	"rtbench/internal/telemetry"
)

// Run executes b once and writes its report to stdout. Sinks, telemetry and
// progress logging are set up from opts; progress and sink logs go to stderr.
func Run(ctx context.Context, b suite.Benchmark, opts Options, stdout, stderr io.Writer) (err error) {
	logger := NewLogger(stderr, opts.Verbose)
	suite.SetLogger(logger)
	defer suite.SetLogger(nil)

	if opts.MetricsEnabled() {
		if err := telemetry.Enable(telemetry.Config{Enabled: true, MetricsAddr: opts.MetricsAddr}); err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = telemetry.Shutdown(sctx)
		}()
		if addr := telemetry.Addr(); addr != "" {
			logger.Printf("serving metrics on http://%s/metrics", addr)
		}
	}

	pub, err := sink.BuildAll(opts.Adapters(), sink.Options{
		Path:        opts.ResultsFile,
		RedisAddr:   opts.RedisAddr,
		RedisPrefix: opts.RedisPrefix,
		RedisMaxLen: opts.RedisMaxLen,
		Logger:      log.New(stderr, "", log.LstdFlags),
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sinks: %w", cerr)
		}
	}()

	logger.Printf("running %s", b.Name())
	rec, err := b.Run(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", b.Name(), err)
	}
	if err := report.NewWriter(stdout).Write(rec); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	telemetry.Observe(rec)
	if err := pub.Publish(ctx, rec); err != nil {
		return fmt.Errorf("publish %s: %w", rec.Benchmark, err)
	}
	if opts.MetricsFile != "" {
		if err := telemetry.WriteTextfile(opts.MetricsFile); err != nil {
			return fmt.Errorf("write metrics file: %w", err)
		}
		logger.Printf("wrote metrics to %s", opts.MetricsFile)
	}

	if opts.MetricsAddr != "" && opts.MetricsHold > 0 {
		logger.Printf("holding metrics endpoint for %s", opts.MetricsHold)
		select {
		case <-ctx.Done():
		case <-time.After(opts.MetricsHold):
		}
	}
	return nil
}
