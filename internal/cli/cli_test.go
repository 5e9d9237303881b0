package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtbench/internal/sink"
	"rtbench/internal/suite"
)

func tinyFib() suite.Benchmark {
	return &suite.FibRecursive{N: 15, Iterations: 2, Warmup: 3}
}

func execute(t *testing.T, b suite.Benchmark, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand(b)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

var reFibReport = regexp.MustCompile(`^BENCHMARK: fibonacci_recursive
n=15, iterations=2
result=610
best=[0-9]+\.[0-9]{6}ms
avg=[0-9]+\.[0-9]{6}ms
$`)

func TestNewCommand_PlainRunPrintsOnlyReport(t *testing.T) {
	out, errOut, err := execute(t, tinyFib())
	require.NoError(t, err)
	assert.Regexp(t, reFibReport, out)
	assert.Empty(t, errOut)
}

func TestNewCommand_Name(t *testing.T) {
	assert.Equal(t, "fibonacci-recursive", NewCommand(tinyFib()).Use)
	assert.Equal(t, "string-operations", CommandName(suite.NewStringOperations()))
}

func TestNewCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, tinyFib(), "extra")
	assert.Error(t, err)
}

func TestNewCommand_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, tinyFib(), "--verbose")
	require.NoError(t, err)
	assert.Regexp(t, reFibReport, out)
	assert.Contains(t, errOut, "rtbench: ")
	assert.Contains(t, errOut, "running fibonacci_recursive")
	assert.Contains(t, errOut, "warmup fib(3) done")
}

func TestNewCommand_ResultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")
	_, _, err := execute(t, tinyFib(), "--results-file", path)
	require.NoError(t, err)
	_, _, err = execute(t, tinyFib(), "--results-file", path)
	require.NoError(t, err)

	recs, err := sink.ReadAllRecords(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	v, ok := recs[1].Result("result")
	assert.True(t, ok)
	assert.Equal(t, "610", v)
	require.NotNil(t, recs[0].Stats)
	assert.Len(t, recs[0].Stats.Samples, 2)
}

func TestNewCommand_EnvFallbacks(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "env.jsonl")
	metrics := filepath.Join(dir, "env.prom")
	t.Setenv(EnvResultsFile, results)
	t.Setenv(EnvMetricsFile, metrics)

	_, _, err := execute(t, tinyFib())
	require.NoError(t, err)

	recs, err := sink.ReadAllRecords(results)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `rtbench_best_ms{benchmark="fibonacci_recursive"}`)
}

func TestNewCommand_LogResults(t *testing.T) {
	_, errOut, err := execute(t, tinyFib(), "--log-results")
	require.NoError(t, err)
	assert.Contains(t, errOut, `result fibonacci_recursive {"benchmark":"fibonacci_recursive"`)
}

func TestNewCommand_BadResultsFile(t *testing.T) {
	out, _, err := execute(t, tinyFib(), "--results-file", filepath.Join(t.TempDir(), "no", "dir", "r.jsonl"))
	require.Error(t, err)
	assert.Empty(t, out, "sink setup fails before the run")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := Run(ctx, tinyFib(), Options{}, &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "fibonacci_recursive")
	assert.Empty(t, stdout.String())
}

func TestOptions_Adapters(t *testing.T) {
	assert.Empty(t, Options{}.Adapters())
	assert.Equal(t, []string{"file", "redis", "log"},
		Options{ResultsFile: "x", RedisAddr: "127.0.0.1:6379", LogResults: true}.Adapters())
	assert.False(t, Options{}.MetricsEnabled())
	assert.True(t, Options{MetricsFile: "m.prom"}.MetricsEnabled())
}

func TestOptions_ApplyEnvKeepsFlags(t *testing.T) {
	env := map[string]string{EnvResultsFile: "env.jsonl", EnvRedisAddr: "redis:6379"}
	o := Options{ResultsFile: "flag.jsonl"}
	o.ApplyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "flag.jsonl", o.ResultsFile)
	assert.Equal(t, "redis:6379", o.RedisAddr)
	assert.Empty(t, o.MetricsFile)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Printf("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Printf("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.True(t, strings.HasPrefix(buf.String(), logPrefix), "buffers are never coloured")
}

func TestColorSupported_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorSupported(os.Stderr))
}

func rootExec(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_List(t *testing.T) {
	out, err := rootExec(t, "list")
	require.NoError(t, err)
	for _, name := range suite.Names() {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, len(suite.Names()), strings.Count(out, "\n"))
}

func TestRootCommand_RunUnknown(t *testing.T) {
	_, err := rootExec(t, "run", "quicksort")
	require.Error(t, err)
	assert.ErrorIs(t, err, suite.ErrUnknownBenchmark)
}

func TestRootCommand_RunNeedsOneName(t *testing.T) {
	_, err := rootExec(t, "run")
	assert.Error(t, err)
	_, err = rootExec(t, "run", "nbody", "prime_sieve")
	assert.Error(t, err)
}

func TestRootCommand_Version(t *testing.T) {
	out, err := rootExec(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rtbench version dev\n", out)
}
