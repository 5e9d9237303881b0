package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtbench/internal/report"
	"rtbench/internal/timing"
)

type evalCall struct {
	script string
	keys   []string
	args   []interface{}
}

type fakeRedisEvaler struct {
	calls     []evalCall
	returnErr error
	closed    bool
}

func (f *fakeRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f.calls = append(f.calls, evalCall{script: script, keys: append([]string{}, keys...), args: append([]interface{}{}, args...)})
	return int64(len(f.calls)), nil
}

func (f *fakeRedisEvaler) Close() error {
	f.closed = true
	return nil
}

type failPublisher struct{ err error }

func (f failPublisher) Publish(context.Context, *report.Record) error { return f.err }
func (f failPublisher) Close() error                                  { return f.err }

func sampleRecord() *report.Record {
	return report.New("prime_sieve").
		AddParam("limit", 100).
		AddParam("iterations", 2).
		AddResult("primes_found", 25).
		SetStats(timing.Summarize([]float64{1.5, 2.5}))
}

func TestRedisKeysHelpers(t *testing.T) {
	assert.Equal(t, "rtbench:runs:nbody", RedisRunsKey("rtbench", "nbody"))
	assert.Equal(t, "p:latest", RedisLatestKey("p"))
}

func TestNewRedisPublisher_Defaults(t *testing.T) {
	r := NewRedisPublisher(&fakeRedisEvaler{}, "", 0)
	assert.Equal(t, DefaultRedisPrefix, r.prefix)
	assert.Equal(t, DefaultRedisMaxLen, r.maxLen)
}

func TestRedisPublisher_Publish(t *testing.T) {
	fake := &fakeRedisEvaler{}
	r := NewRedisPublisher(fake, "bench", 50)
	rec := sampleRecord()
	require.NoError(t, r.Publish(context.Background(), rec))
	require.Len(t, fake.calls, 1)

	c := fake.calls[0]
	assert.Contains(t, c.script, "RPUSH")
	assert.Contains(t, c.script, "LTRIM")
	assert.Contains(t, c.script, "HSET")
	assert.Equal(t, []string{"bench:runs:prime_sieve", "bench:latest"}, c.keys)
	require.Len(t, c.args, 3)
	assert.Equal(t, "prime_sieve", c.args[0])
	assert.Equal(t, 50, c.args[2])
	assert.JSONEq(t, mustJSON(t, rec), c.args[1].(string))
}

func TestRedisPublisher_ErrorWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewRedisPublisher(&fakeRedisEvaler{returnErr: boom}, "", 0)
	err := r.Publish(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "benchmark=prime_sieve")
}

func TestRedisPublisher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewRedisPublisher(&fakeRedisEvaler{}, "", 0).Publish(ctx, sampleRecord())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisPublisher_CloseClosesClient(t *testing.T) {
	fake := &fakeRedisEvaler{}
	require.NoError(t, NewRedisPublisher(fake, "", 0).Close())
	assert.True(t, fake.closed)

	assert.NoError(t, NewRedisPublisher(LoggingRedisEvaler{}, "", 0).Close())
}

func TestLoggingRedisEvaler(t *testing.T) {
	var buf bytes.Buffer
	l := LoggingRedisEvaler{Logger: log.New(&buf, "", 0)}
	v, err := l.Eval(context.Background(), "return 1", []string{"a", "b"}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	assert.Contains(t, buf.String(), "KEYS=[a b]")
}

func TestFilePublisher_AppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")

	p, err := NewFilePublisher(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())
	require.NoError(t, p.Publish(context.Background(), sampleRecord()))
	require.NoError(t, p.Close())

	// A second open appends.
	p, err = NewFilePublisher(path)
	require.NoError(t, err)
	require.NoError(t, p.Publish(context.Background(), report.New("nbody").AddParam("steps", 10).SetWall(3)))
	require.NoError(t, p.Close())

	recs, err := ReadAllRecords(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "prime_sieve", recs[0].Benchmark)
	v, ok := recs[0].Result("primes_found")
	assert.True(t, ok)
	assert.Equal(t, "25", v)
	require.NotNil(t, recs[0].Stats)
	assert.Equal(t, 1.5, recs[0].Stats.Best)
	assert.Equal(t, "nbody", recs[1].Benchmark)
	require.NotNil(t, recs[1].WallMs)
	assert.Equal(t, 3.0, *recs[1].WallMs)
}

func TestReadAllRecords_SkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("not json\n{\"benchmark\":\"nbody\"}\n"), 0o644))
	recs, err := ReadAllRecords(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "nbody", recs[0].Benchmark)

	_, err = ReadAllRecords(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestNewFilePublisher_Errors(t *testing.T) {
	_, err := NewFilePublisher("")
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = NewFilePublisher(filepath.Join(t.TempDir(), "no", "such", "dir", "r.jsonl"))
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := LogPublisher{Logger: log.New(&buf, "", 0)}
	require.NoError(t, p.Publish(context.Background(), sampleRecord()))
	assert.Contains(t, buf.String(), `result prime_sieve {"benchmark":"prime_sieve"`)
	assert.NoError(t, p.Close())
}

func TestMulti_PublishesToAllAndJoinsErrors(t *testing.T) {
	a, b := &fakeRedisEvaler{}, &fakeRedisEvaler{}
	boom := errors.New("boom")
	m := Multi{
		NewRedisPublisher(a, "", 0),
		failPublisher{err: boom},
		NewRedisPublisher(b, "", 0),
	}
	err := m.Publish(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, a.calls, 1)
	assert.Len(t, b.calls, 1)

	assert.ErrorIs(t, m.Close(), boom)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), sampleRecord()))
	assert.NoError(t, Nop{}.Close())
}

func TestBuild(t *testing.T) {
	p, err := Build("", Options{})
	require.NoError(t, err)
	assert.Equal(t, Nop{}, p)

	_, err = Build("file", Options{})
	assert.ErrorIs(t, err, ErrNoPath)

	p, err = Build("file", Options{Path: filepath.Join(t.TempDir(), "r.jsonl")})
	require.NoError(t, err)
	assert.IsType(t, &FilePublisher{}, p)
	require.NoError(t, p.Close())

	// Logging client path (no address).
	p, err = Build("redis", Options{})
	require.NoError(t, err)
	require.IsType(t, &RedisPublisher{}, p)
	assert.IsType(t, LoggingRedisEvaler{}, p.(*RedisPublisher).client)

	// Real client path: constructing does not dial.
	p, err = Build("redis", Options{RedisAddr: "127.0.0.1:0"})
	require.NoError(t, err)
	assert.IsType(t, &GoRedisEvaler{}, p.(*RedisPublisher).client)
	require.NoError(t, p.Close())

	p, err = Build("log", Options{})
	require.NoError(t, err)
	assert.IsType(t, LogPublisher{}, p)

	_, err = Build("kafka", Options{})
	assert.ErrorIs(t, err, ErrUnknownAdapter)
	assert.Contains(t, err.Error(), "kafka")
}

func TestBuildAll(t *testing.T) {
	p, err := BuildAll(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, Nop{}, p)

	p, err = BuildAll([]string{"log"}, Options{})
	require.NoError(t, err)
	assert.IsType(t, LogPublisher{}, p)

	p, err = BuildAll([]string{"log", "redis"}, Options{})
	require.NoError(t, err)
	assert.Len(t, p.(Multi), 2)

	_, err = BuildAll([]string{"log", "file"}, Options{})
	assert.ErrorIs(t, err, ErrNoPath)
}

func mustJSON(t *testing.T, rec *report.Record) string {
	t.Helper()
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	return string(b)
}
