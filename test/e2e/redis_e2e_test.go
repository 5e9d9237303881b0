//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// TestRedisPublishE2E runs a benchmark with --redis-addr and checks the
// history list and latest hash. Requires a Redis at 127.0.0.1:6379.
func TestRedisPublishE2E(t *testing.T) {
	rc := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping: Redis not reachable on 127.0.0.1:6379: %v", err)
	}

	prefix := "rtbench-e2e"
	runsKey := prefix + ":runs:prime_sieve"
	latestKey := prefix + ":latest"
	_ = rc.Del(context.Background(), runsKey, latestKey).Err()

	exe := buildBinary(t, "rtbench/cmd/prime-sieve")
	for i := 0; i < 3; i++ {
		runBinary(t, exe, nil, "--redis-addr=127.0.0.1:6379", "--redis-prefix="+prefix, "--redis-max-len=2")
	}

	n, err := rc.LLen(context.Background(), runsKey).Result()
	if err != nil {
		t.Fatalf("LLEN: %v", err)
	}
	if n != 2 {
		t.Fatalf("history length = %d, want 2 (trimmed)", n)
	}

	latest, err := rc.HGet(context.Background(), latestKey, "prime_sieve").Result()
	if err != nil {
		t.Fatalf("HGET latest: %v", err)
	}
	var rec struct {
		Benchmark string `json:"benchmark"`
		Results   []struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(latest), &rec); err != nil {
		t.Fatalf("decode latest: %v", err)
	}
	if rec.Benchmark != "prime_sieve" || len(rec.Results) != 1 || rec.Results[0].Value != "664579" {
		t.Fatalf("unexpected latest record: %+v", rec)
	}
}
