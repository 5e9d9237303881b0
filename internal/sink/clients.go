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
	"log"

	redis "github.com/redis/go-redis/v9"
)

// LoggingRedisEvaler logs the script evaluation instead of sending it. It
// lets the redis adapter be selected without a server.
type LoggingRedisEvaler struct {
	Logger *log.Logger
}

func (l LoggingRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	lg := l.Logger
	if lg == nil {
		lg = log.Default()
	}
	lg.Printf("[redis-demo] EVAL script(len=%d) KEYS=%v ARGC=%d", len(script), keys, len(args))
	return int64(1), nil
}

// GoRedisEvaler implements RedisEvaler with github.com/redis/go-redis/v9.
type GoRedisEvaler struct{ c *redis.Client }

// NewGoRedisEvaler connects lazily to addr, e.g. "127.0.0.1:6379".
func NewGoRedisEvaler(addr string) *GoRedisEvaler {
	return &GoRedisEvaler{c: redis.NewClient(&redis.Options{Addr: addr})}
}

func (g *GoRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	return g.c.Eval(ctx, script, keys, args...).Result()
}

// Close releases the client's connection pool.
func (g *GoRedisEvaler) Close() error { return g.c.Close() }
