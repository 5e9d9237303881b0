//go:build e2e

// Package e2e contains end-to-end tests that build the real benchmark
// binaries and check what they print, publish and serve.
package e2e

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"
)

// buildBinary builds the given package (module import path) into a temp dir
// and returns the executable path.
func buildBinary(t *testing.T, pkg string) string {
	t.Helper()
	exe := filepath.Join(t.TempDir(), exeName(filepath.Base(pkg)))
	build := exec.Command("go", "build", "-o", exe, pkg)
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build %s: %v", pkg, err)
	}
	return exe
}

// runBinary runs exe to completion and returns stdout and stderr separately.
func runBinary(t *testing.T, exe string, env []string, args ...string) (string, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("%s %v failed: %v\nstderr:\n%s", filepath.Base(exe), args, err, stderr.String())
	}
	return stdout.String(), stderr.String()
}

// exeName returns the executable name for the current OS (adds .exe on Windows).
func exeName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

// --- Tests ---

// TestE2E_FibIterativeReport runs the standalone binary with no flags and
// checks the exact report shape on stdout and silence on stderr.
func TestE2E_FibIterativeReport(t *testing.T) {
	exe := buildBinary(t, "rtbench/cmd/fibonacci-iterative")
	out, errOut := runBinary(t, exe, nil)

	re := regexp.MustCompile(`^BENCHMARK: fibonacci_iterative
n=50, iterations=1000000
result=12586269025
time=[0-9]+\.[0-9]{6}ms
ops_per_sec=[0-9]+
$`)
	if !re.MatchString(out) {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if errOut != "" {
		t.Fatalf("expected empty stderr, got:\n%s", errOut)
	}
}

// TestE2E_UmbrellaListAndRun exercises rtbench list and run with a results file.
func TestE2E_UmbrellaListAndRun(t *testing.T) {
	exe := buildBinary(t, "rtbench/cmd/rtbench")

	list, _ := runBinary(t, exe, nil, "list")
	for _, name := range []string{"fibonacci_recursive", "nbody", "sort_floats"} {
		if !strings.Contains(list, name) {
			t.Fatalf("list missing %s:\n%s", name, list)
		}
	}

	results := filepath.Join(t.TempDir(), "runs.jsonl")
	out, _ := runBinary(t, exe, []string{"RTBENCH_RESULTS_FILE=" + results}, "run", "matrix_multiply")
	if !strings.HasPrefix(out, "BENCHMARK: matrix_multiply\nsize=200x200, iterations=3\n") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	b, err := os.ReadFile(results)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if !strings.Contains(string(b), `"benchmark":"matrix_multiply"`) {
		t.Fatalf("results file missing record:\n%s", b)
	}
}

// TestE2E_MetricsEndpointHold scrapes /metrics while the binary holds the
// endpoint open after its run.
func TestE2E_MetricsEndpointHold(t *testing.T) {
	exe := buildBinary(t, "rtbench/cmd/sort-floats")
	addr := freeAddr(t)

	cmd := exec.Command(exe, "--metrics-addr="+addr, "--metrics-hold=5s", "--verbose")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.Fatalf("StderrPipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	})

	if !waitForLine(stderr, "holding metrics endpoint", 60*time.Second) {
		t.Fatalf("binary never reached the hold phase")
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), `rtbench_runs_total{benchmark="sort_floats"} 1`) {
		t.Fatalf("metrics missing run counter:\n%s", body)
	}
}

func waitForLine(r io.Reader, needle string, timeout time.Duration) bool {
	found := make(chan struct{})
	go func() {
		s := bufio.NewScanner(r)
		for s.Scan() {
			if strings.Contains(s.Text(), needle) {
				close(found)
				for s.Scan() {
				}
				return
			}
		}
	}()
	select {
	case <-found:
		return true
	case <-time.After(timeout):
		return false
	}
}
