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

// Package nbody implements a small closed gravitational system of point
// masses, advanced with the symplectic pairwise update used by the classic
// benchmarks-game n-body program.
//
// The pair iteration order (i ascending, j > i) is fixed. Given the same
// initial state and the same sequence of Advance calls, results are
// bit-for-bit reproducible.
package nbody

import "math"

const (
	// Pi is spelled out so the derived constants match the reference programs exactly.
	Pi          = 3.141592653589793
	SolarMass   = 4.0 * Pi * Pi
	DaysPerYear = 365.24
)

// Body is a point mass. Positions are in AU, velocities in AU/year and
// masses in solar-mass units scaled by SolarMass.
type Body struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Mass       float64
}

// System is an ordered set of bodies. A body has no identity beyond its index.
type System []Body

// Sun returns the central body at rest at the origin.
func Sun() Body {
	return Body{Mass: SolarMass}
}

// Jupiter returns Jupiter's initial state.
func Jupiter() Body {
	return Body{
		X:    4.84143144246472090,
		Y:    -1.16032004402742839,
		Z:    -1.03622044471123109,
		VX:   0.00166007664274403694 * DaysPerYear,
		VY:   0.00769901118419740425 * DaysPerYear,
		VZ:   -0.00690460016972063023 * DaysPerYear,
		Mass: 0.000954791938424326609 * SolarMass,
	}
}

// Saturn returns Saturn's initial state.
func Saturn() Body {
	return Body{
		X:    8.34336671824457987,
		Y:    4.12479856412430479,
		Z:    -4.03523417114321381,
		VX:   -0.00276742510726862411 * DaysPerYear,
		VY:   0.00499852801234917238 * DaysPerYear,
		VZ:   0.00230417297573763929 * DaysPerYear,
		Mass: 0.000285885980666130812 * SolarMass,
	}
}

// NewSolarSystem returns Sun, Jupiter and Saturn with the Sun's velocity
// offset so that the total momentum of the system is zero.
func NewSolarSystem() System {
	s := System{Sun(), Jupiter(), Saturn()}
	s.OffsetMomentum()
	return s
}

// Momentum returns the total linear momentum Σ m·v.
func (s System) Momentum() (px, py, pz float64) {
	for i := range s {
		px += s[i].VX * s[i].Mass
		py += s[i].VY * s[i].Mass
		pz += s[i].VZ * s[i].Mass
	}
	return px, py, pz
}

// OffsetMomentum sets the first body's velocity to -p/SolarMass. It is applied
// once after loading; Advance does not re-enforce it.
func (s System) OffsetMomentum() {
	if len(s) == 0 {
		return
	}
	px, py, pz := s.Momentum()
	s[0].VX = -px / SolarMass
	s[0].VY = -py / SolarMass
	s[0].VZ = -pz / SolarMass
}

// Energy returns the total mechanical energy: kinetic plus pairwise potential.
func (s System) Energy() float64 { return Energy(s) }

// Advance moves the system forward by dt.
func (s System) Advance(dt float64) { Advance(s, dt) }

// Clone returns an independent copy.
func (s System) Clone() System {
	out := make(System, len(s))
	copy(out, s)
	return out
}

// Energy returns Σ ½·m·|v|² + Σ_{i<j} −mᵢ·mⱼ/|rᵢ−rⱼ|. It does not mutate bodies.
func Energy(bodies []Body) float64 {
	n := len(bodies)
	e := 0.0
	for i := 0; i < n; i++ {
		bi := &bodies[i]
		e += 0.5 * bi.Mass * (bi.VX*bi.VX + bi.VY*bi.VY + bi.VZ*bi.VZ)
		for j := i + 1; j < n; j++ {
			bj := &bodies[j]
			dx := bi.X - bj.X
			dy := bi.Y - bj.Y
			dz := bi.Z - bj.Z
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			e -= (bi.Mass * bj.Mass) / dist
		}
	}
	return e
}

// Advance applies one step: for every unordered pair it updates both
// velocities by the mutual impulse, then integrates every position by v·dt.
//
// Coincident bodies divide by zero; the caller owns that.
func Advance(bodies []Body, dt float64) {
	n := len(bodies)
	for i := 0; i < n; i++ {
		bi := &bodies[i]
		for j := i + 1; j < n; j++ {
			bj := &bodies[j]
			dx := bi.X - bj.X
			dy := bi.Y - bj.Y
			dz := bi.Z - bj.Z
			distSq := dx*dx + dy*dy + dz*dz
			dist := math.Sqrt(distSq)
			mag := dt / (distSq * dist)

			bi.VX -= dx * bj.Mass * mag
			bi.VY -= dy * bj.Mass * mag
			bi.VZ -= dz * bj.Mass * mag

			bj.VX += dx * bi.Mass * mag
			bj.VY += dy * bi.Mass * mag
			bj.VZ += dz * bi.Mass * mag
		}
	}

	for i := range bodies {
		bodies[i].X += dt * bodies[i].VX
		bodies[i].Y += dt * bodies[i].VY
		bodies[i].Z += dt * bodies[i].VZ
	}
}

// Simulate advances s by steps of dt.
func Simulate(s System, steps int, dt float64) {
	for i := 0; i < steps; i++ {
		Advance(s, dt)
	}
}
