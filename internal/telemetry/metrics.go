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

// Package telemetry exports benchmark outcomes as Prometheus metrics.
//
// Metrics live on a package registry so a textfile dump holds only rtbench
// series. Labels take values from the fixed benchmark and case names, so
// cardinality stays bounded.
package telemetry

import (
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"rtbench/internal/report"
)

// Config controls the module.
//
//   - MetricsAddr, when non-empty, starts an HTTP server that serves /metrics
//     on that address until Shutdown.
type Config struct {
	Enabled     bool
	MetricsAddr string
}

// TotalCase is the case label used for single-region timings.
const TotalCase = "total"

var (
	modEnabled atomic.Bool

	// Registry holds every rtbench metric.
	Registry = prometheus.NewRegistry()

	runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rtbench_runs_total",
		Help: "Completed benchmark runs",
	}, []string{"benchmark"})
	sampleMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rtbench_sample_ms",
		Help:    "Distribution of per-iteration wall times in milliseconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 12),
	}, []string{"benchmark"})
	bestMs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rtbench_best_ms",
		Help: "Fastest iteration of the last run in milliseconds",
	}, []string{"benchmark"})
	avgMs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rtbench_avg_ms",
		Help: "Mean iteration of the last run in milliseconds",
	}, []string{"benchmark"})
	elapsedMs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rtbench_elapsed_ms",
		Help: "Wall time of the last run per case in milliseconds",
	}, []string{"benchmark", "case"})
	opsPerSecond = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rtbench_ops_per_second",
		Help: "Throughput of the last looped run",
	}, []string{"benchmark"})
	nbodyEnergy = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rtbench_nbody_energy",
		Help: "Total system energy of the last n-body run",
	}, []string{"phase"})
)

func init() {
	Registry.MustRegister(runsTotal, sampleMs, bestMs, avgMs, elapsedMs, opsPerSecond, nbodyEnergy)
}

// Enable configures the module and starts the metrics endpoint when an
// address is set. Calling it again replaces a running endpoint.
func Enable(cfg Config) error {
	modEnabled.Store(cfg.Enabled)
	if cfg.MetricsAddr == "" {
		return nil
	}
	return startMetricsEndpoint(cfg.MetricsAddr)
}

// Enabled reports whether Observe records anything.
func Enabled() bool { return modEnabled.Load() }

// Observe records a finished run.
func Observe(rec *report.Record) {
	if !modEnabled.Load() || rec == nil {
		return
	}
	name := rec.Benchmark
	runsTotal.WithLabelValues(name).Inc()

	switch {
	case rec.Stats != nil:
		h := sampleMs.WithLabelValues(name)
		for _, s := range rec.Stats.Samples {
			h.Observe(s)
		}
		bestMs.WithLabelValues(name).Set(rec.Stats.Best)
		avgMs.WithLabelValues(name).Set(rec.Stats.Avg)
		elapsedMs.WithLabelValues(name, TotalCase).Set(rec.Stats.Total)
	case rec.Throughput != nil:
		opsPerSecond.WithLabelValues(name).Set(rec.Throughput.OpsPerSec)
		elapsedMs.WithLabelValues(name, TotalCase).Set(rec.Throughput.ElapsedMs)
	case rec.WallMs != nil:
		elapsedMs.WithLabelValues(name, TotalCase).Set(*rec.WallMs)
	}

	for _, c := range rec.Cases {
		elapsedMs.WithLabelValues(name, c.Label).Set(c.ElapsedMs)
	}

	for _, phase := range []string{"before", "after"} {
		if v, ok := rec.Result("energy_" + phase); ok {
			if e, err := strconv.ParseFloat(v, 64); err == nil {
				nbodyEnergy.WithLabelValues(phase).Set(e)
			}
		}
	}
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
