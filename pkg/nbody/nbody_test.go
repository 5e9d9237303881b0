package nbody

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolarSystem_ZeroMomentum(t *testing.T) {
	s := NewSolarSystem()
	require.Len(t, s, 3)

	px, py, pz := s.Momentum()
	assert.InDelta(t, 0, px, 1e-15)
	assert.InDelta(t, 0, py, 1e-15)
	assert.InDelta(t, 0, pz, 1e-15)
}

func TestNewSolarSystem_Constants(t *testing.T) {
	s := NewSolarSystem()
	assert.Equal(t, SolarMass, s[0].Mass)
	assert.Equal(t, 4.84143144246472090, s[1].X)
	assert.Equal(t, 0.000954791938424326609*SolarMass, s[1].Mass)
	assert.Equal(t, -4.03523417114321381, s[2].Z)
	assert.Equal(t, 0.00230417297573763929*DaysPerYear, s[2].VZ)
	// Only the Sun's velocity is offset.
	assert.Equal(t, Jupiter().VX, s[1].VX)
	assert.NotZero(t, s[0].VX)
}

func TestEnergy_BoundSystemIsNegative(t *testing.T) {
	e := NewSolarSystem().Energy()
	assert.Less(t, e, 0.0)
	assert.InDelta(t, -0.031928656, e, 1e-8)
}

func TestEnergy_DoesNotMutate(t *testing.T) {
	s := NewSolarSystem()
	before := s.Clone()
	_ = Energy(s)
	assert.Equal(t, before, s)
	assert.Equal(t, Energy(s), Energy(s))
}

func TestAdvance_ZeroStepsKeepsEnergy(t *testing.T) {
	s := NewSolarSystem()
	e0 := s.Energy()
	Simulate(s, 0, 0.01)
	assert.Equal(t, e0, s.Energy())
}

func TestAdvance_ZeroDtIsIdentity(t *testing.T) {
	s := NewSolarSystem()
	before := s.Clone()
	s.Advance(0)
	assert.Equal(t, before, s)
}

func TestAdvance_EnergyDriftBounded(t *testing.T) {
	s := NewSolarSystem()
	e0 := s.Energy()
	Simulate(s, 20000, 0.01)
	e1 := s.Energy()

	assert.NotEqual(t, e0, e1, "symplectic integrator should drift slightly")
	rel := math.Abs((e1 - e0) / e0)
	assert.Less(t, rel, 1e-2, "relative drift %g", rel)
}

func TestAdvance_Reproducible(t *testing.T) {
	a := NewSolarSystem()
	b := NewSolarSystem()
	Simulate(a, 1000, 0.01)
	Simulate(b, 1000, 0.01)
	require.Equal(t, a, b)
	assert.Equal(t, math.Float64bits(a.Energy()), math.Float64bits(b.Energy()))
}

func TestAdvance_ConservesMomentum(t *testing.T) {
	s := NewSolarSystem()
	Simulate(s, 5000, 0.01)
	px, py, pz := s.Momentum()
	assert.InDelta(t, 0, px, 1e-12)
	assert.InDelta(t, 0, py, 1e-12)
	assert.InDelta(t, 0, pz, 1e-12)
}

func TestAdvance_TwoBodiesAttract(t *testing.T) {
	s := System{
		{X: -1, Mass: 1},
		{X: 1, Mass: 1},
	}
	s.Advance(0.01)

	// Equal masses: equal and opposite impulses.
	assert.Greater(t, s[0].VX, 0.0)
	assert.Less(t, s[1].VX, 0.0)
	assert.InDelta(t, -s[0].VX, s[1].VX, 1e-18)
	// mag = dt/d^3 = 0.01/8; |dv| = |dx|*m*mag = 2*0.01/8
	assert.InDelta(t, 0.0025, s[0].VX, 1e-15)
	assert.InDelta(t, -1+0.01*0.0025, s[0].X, 1e-15)
}

func TestOffsetMomentum_Empty(t *testing.T) {
	var s System
	assert.NotPanics(t, func() { s.OffsetMomentum() })
	assert.Equal(t, 0.0, Energy(nil))
}
