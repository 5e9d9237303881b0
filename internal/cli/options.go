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

// Package cli builds the cobra commands shared by every benchmark binary.
//
// Each cmd/<benchmark> main is a one-liner around NewCommand; cmd/rtbench
// uses NewRootCommand. With no flags set a run prints exactly the report.
package cli

import (
	"os"
	"time"

	"github.com/spf13/pflag"

	"rtbench/internal/sink"
)

// Environment fallbacks for the output flags.
const (
	EnvResultsFile = "RTBENCH_RESULTS_FILE"
	EnvRedisAddr   = "RTBENCH_REDIS_ADDR"
	EnvMetricsFile = "RTBENCH_METRICS_FILE"
)

// Options are the opt-in output knobs. Workload parameters are not
// configurable.
type Options struct {
	ResultsFile string
	RedisAddr   string
	RedisPrefix string
	RedisMaxLen int
	LogResults  bool
	MetricsAddr string
	MetricsHold time.Duration
	MetricsFile string
	Verbose     bool
}

// AddFlags registers the options on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ResultsFile, "results-file", "", "append the run as a JSON line to this file (env "+EnvResultsFile+")")
	fs.StringVar(&o.RedisAddr, "redis-addr", "", "publish the run to Redis at host:port (env "+EnvRedisAddr+")")
	fs.StringVar(&o.RedisPrefix, "redis-prefix", sink.DefaultRedisPrefix, "key prefix for Redis publishing")
	fs.IntVar(&o.RedisMaxLen, "redis-max-len", sink.DefaultRedisMaxLen, "runs kept per benchmark in Redis")
	fs.BoolVar(&o.LogResults, "log-results", false, "log the run as a JSON line on stderr")
	fs.StringVar(&o.MetricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address during the run")
	fs.DurationVar(&o.MetricsHold, "metrics-hold", 0, "keep /metrics up this long after the run")
	fs.StringVar(&o.MetricsFile, "metrics-file", "", "write a Prometheus textfile after the run (env "+EnvMetricsFile+")")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log progress on stderr")
}

// ApplyEnv fills unset options from the environment.
func (o *Options) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if o.ResultsFile == "" {
		o.ResultsFile = getenv(EnvResultsFile)
	}
	if o.RedisAddr == "" {
		o.RedisAddr = getenv(EnvRedisAddr)
	}
	if o.MetricsFile == "" {
		o.MetricsFile = getenv(EnvMetricsFile)
	}
}

// Adapters lists the sink adapters the options select, in publish order.
func (o Options) Adapters() []string {
	var out []string
	if o.ResultsFile != "" {
		out = append(out, "file")
	}
	if o.RedisAddr != "" {
		out = append(out, "redis")
	}
	if o.LogResults {
		out = append(out, "log")
	}
	return out
}

// MetricsEnabled reports whether telemetry has anywhere to go.
func (o Options) MetricsEnabled() bool { return o.MetricsAddr != "" || o.MetricsFile != "" }
