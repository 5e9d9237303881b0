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

package suite

import (
	"context"
	"time"

	"rtbench/internal/report"
	"rtbench/internal/timing"
	"rtbench/pkg/nbody"
)

// ctxCheckEvery is how many steps run between context checks.
const ctxCheckEvery = 1 << 14

// NBody advances the Sun/Jupiter/Saturn system and reports energy before and
// after, plus the wall time of the whole advance loop.
type NBody struct {
	Steps int
	Dt    float64
}

// NewNBody returns 500,000 steps of dt 0.01.
func NewNBody() *NBody {
	return &NBody{Steps: 500000, Dt: 0.01}
}

func (*NBody) Name() string    { return "nbody" }
func (*NBody) Summary() string { return "Sun/Jupiter/Saturn symplectic n-body, energy before/after" }

func (b *NBody) Run(ctx context.Context) (*report.Record, error) {
	sys := nbody.NewSolarSystem()
	before := sys.Energy()

	start := time.Now()
	for done := 0; done < b.Steps; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := min(ctxCheckEvery, b.Steps-done)
		nbody.Simulate(sys, n, b.Dt)
		done += n
	}
	elapsed := timing.Since(start)

	after := sys.Energy()
	logf("%s: energy drift %.3e", b.Name(), after-before)

	return report.New(b.Name()).
		AddParam("steps", b.Steps).
		AddResult("energy_before", report.Fixed(before, 17)).
		AddResult("energy_after", report.Fixed(after, 17)).
		SetWall(elapsed), nil
}
