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
	"context"
	"encoding/json"
	"fmt"

	"rtbench/internal/report"
)

const (
	// DefaultRedisPrefix namespaces every key the publisher writes.
	DefaultRedisPrefix = "rtbench"
	// DefaultRedisMaxLen caps the per-benchmark history list.
	DefaultRedisMaxLen = 1000
)

// RedisEvaler abstracts the minimal surface we need from a Redis client.
// GoRedisEvaler wraps github.com/redis/go-redis/v9; tests use a fake.
type RedisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error)
}

// RedisPublisher appends each record to a capped per-benchmark list and
// updates the latest-run hash, in one script so both change together:
// 1) RPUSH <prefix>:runs:<benchmark> <json>
// 2) LTRIM the list to the newest maxLen entries
// 3) HSET <prefix>:latest <benchmark> <json>
type RedisPublisher struct {
	client RedisEvaler
	prefix string
	maxLen int
}

// NewRedisPublisher returns a publisher on client. An empty prefix becomes
// DefaultRedisPrefix and maxLen <= 0 becomes DefaultRedisMaxLen.
func NewRedisPublisher(client RedisEvaler, prefix string, maxLen int) *RedisPublisher {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if maxLen <= 0 {
		maxLen = DefaultRedisMaxLen
	}
	return &RedisPublisher{client: client, prefix: prefix, maxLen: maxLen}
}

// redisLuaScript returns the new list length.
const redisLuaScript = `
local runsKey = KEYS[1]
local latestKey = KEYS[2]
local name = ARGV[1]
local payload = ARGV[2]
local maxLen = tonumber(ARGV[3])
local n = redis.call('RPUSH', runsKey, payload)
if maxLen and maxLen > 0 and n > maxLen then
  redis.call('LTRIM', runsKey, -maxLen, -1)
  n = maxLen
end
redis.call('HSET', latestKey, name, payload)
return n
`

// RedisRunsKey is the history list for one benchmark.
func RedisRunsKey(prefix, benchmark string) string {
	return fmt.Sprintf("%s:runs:%s", prefix, benchmark)
}

// RedisLatestKey is the hash of the newest record per benchmark.
func RedisLatestKey(prefix string) string { return fmt.Sprintf("%s:latest", prefix) }

func (r *RedisPublisher) Publish(ctx context.Context, rec *report.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.Benchmark, err)
	}
	keys := []string{RedisRunsKey(r.prefix, rec.Benchmark), RedisLatestKey(r.prefix)}
	args := []interface{}{rec.Benchmark, string(payload), r.maxLen}
	if _, err := r.client.Eval(ctx, redisLuaScript, keys, args...); err != nil {
		return fmt.Errorf("redis eval benchmark=%s key=%s: %w", rec.Benchmark, keys[0], err)
	}
	return nil
}

// Close closes the client when it holds a connection.
func (r *RedisPublisher) Close() error {
	if c, ok := r.client.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
