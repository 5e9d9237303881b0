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

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	serverMu sync.Mutex
	server   *http.Server
	bound    string
)

// startMetricsEndpoint exposes /metrics on addr in a background goroutine.
// The listener is opened before returning so a bad address is reported.
func startMetricsEndpoint(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	serverMu.Lock()
	prev := server
	server, bound = srv, ln.Addr().String()
	serverMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("telemetry: metrics server on %s: %v", ln.Addr(), err)
		}
	}()
	return nil
}

// Addr is the bound address of the metrics endpoint, or "" when none runs.
func Addr() string {
	serverMu.Lock()
	defer serverMu.Unlock()
	return bound
}

// Shutdown stops the metrics endpoint, if any, and disables the module.
func Shutdown(ctx context.Context) error {
	modEnabled.Store(false)
	serverMu.Lock()
	srv := server
	server, bound = nil, ""
	serverMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
