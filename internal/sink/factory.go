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
	"fmt"
	"log"
)

// Options holds the knobs for building publishers.
type Options struct {
	Path        string
	RedisAddr   string
	RedisPrefix string
	RedisMaxLen int
	Logger      *log.Logger
}

// Build constructs a Publisher from an adapter name.
// Supported adapters:
//   - "", "nop": discard
//   - "file": JSONL append to opts.Path
//   - "redis": Lua append via go-redis when opts.RedisAddr is set, otherwise
//     a logging client so the adapter can be tried without a server
//   - "log": JSON line through opts.Logger
func Build(adapter string, opts Options) (Publisher, error) {
	switch adapter {
	case "", "nop":
		return Nop{}, nil
	case "file":
		if opts.Path == "" {
			return nil, ErrNoPath
		}
		p, err := NewFilePublisher(opts.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "redis":
		var evaler RedisEvaler
		if opts.RedisAddr != "" {
			evaler = NewGoRedisEvaler(opts.RedisAddr)
		} else {
			evaler = LoggingRedisEvaler{Logger: opts.Logger}
		}
		return NewRedisPublisher(evaler, opts.RedisPrefix, opts.RedisMaxLen), nil
	case "log":
		return LogPublisher{Logger: opts.Logger}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAdapter, adapter)
	}
}

// BuildAll builds one publisher per adapter and combines them. A single
// adapter is returned unwrapped; none yields Nop. On error the publishers
// already built are closed.
func BuildAll(adapters []string, opts Options) (Publisher, error) {
	var out Multi
	for _, a := range adapters {
		p, err := Build(a, opts)
		if err != nil {
			_ = out.Close()
			return nil, err
		}
		out = append(out, p)
	}
	switch len(out) {
	case 0:
		return Nop{}, nil
	case 1:
		return out[0], nil
	default:
		return out, nil
	}
}
