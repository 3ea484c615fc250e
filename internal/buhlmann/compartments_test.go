package buhlmann

import (
	"math"
	"testing"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestAmbientPressure(t *testing.T) {
	assert.InDelta(t, 1.0, AmbientPressure(0), 1e-12)
	assert.InDelta(t, 4.0, AmbientPressure(30), 1e-12)
}

func TestInspiredInertPressure(t *testing.T) {
	air := domain.MustGas(domain.GasAir)
	assert.InDelta(t, 0.79, InspiredInertPressure(0, air), 1e-12)
	assert.InDelta(t, 3.16, InspiredInertPressure(30, air), 1e-12)

	trimix := domain.MustGas(domain.GasTx2135)
	assert.InDelta(t, 4.0*0.44, InspiredInertPressure(30, trimix), 1e-12)

	assert.InDelta(t, 0, InspiredInertPressure(6, domain.MustGas(domain.GasOxygen)), 1e-12)
}

func TestSchreiner_HalfTime(t *testing.T) {
	for _, c := range ZHL16C {
		got := Schreiner(1.0, 3.0, c.HalfTime, c.HalfTime)
		assert.InDelta(t, 2.0, got, 1e-9, "half-time %v", c.HalfTime)
	}
}

func TestSchreiner_ConvergesToInspired(t *testing.T) {
	const pInsp = 3.16
	for _, c := range ZHL16C {
		got := Schreiner(0.79, pInsp, c.HalfTime, 10*c.HalfTime)
		// 2^-10 of the initial gap remains.
		assert.True(t, scalar.EqualWithinAbs(got, pInsp, (pInsp-0.79)/1000),
			"half-time %v: %v not within tolerance of %v", c.HalfTime, got, pInsp)
		assert.Less(t, math.Abs(got-pInsp), math.Abs(0.79-pInsp))
	}
}

func TestSchreiner_ZeroInterval(t *testing.T) {
	assert.Equal(t, 1.7, Schreiner(1.7, 3.0, 4, 0))
}

func TestGradientFactor(t *testing.T) {
	assert.InDelta(t, 0.7, GradientFactor(12, 0, 30, 70), 1e-12)
	assert.InDelta(t, 0.3, GradientFactor(12, 12, 30, 70), 1e-12)
	assert.InDelta(t, 0.3, GradientFactor(18, 12, 30, 70), 1e-12)
	assert.InDelta(t, 0.7, GradientFactor(0, 12, 30, 70), 1e-12)
	assert.InDelta(t, 0.5, GradientFactor(6, 12, 30, 70), 1e-12)
	assert.InDelta(t, 0.6, GradientFactor(3, 12, 30, 70), 1e-12)
}

func TestTolerated_GF100IsMValue(t *testing.T) {
	c := ZHL16C[0]
	assert.InDelta(t, c.MValue(AmbientPressure(9)), c.Tolerated(9, 1.0), 1e-12)
	assert.InDelta(t, AmbientPressure(9), c.Tolerated(9, 0), 1e-12)
}

func TestZHL16C_HalfTimesIncreasing(t *testing.T) {
	for i := 1; i < len(ZHL16C); i++ {
		assert.Greater(t, ZHL16C[i].HalfTime, ZHL16C[i-1].HalfTime)
	}
}

func TestTolerated_SurfaceSaturatedDiverClearsAtLowGF(t *testing.T) {
	surface := InspiredInertPressure(0, domain.MustGas(domain.GasAir))
	for i, c := range ZHL16C {
		for _, gf := range []float64{0.1, 0.3, 1.0} {
			assert.LessOrEqual(t, surface, c.Tolerated(0, gf), "compartment %d gf %v", i+1, gf)
		}
		// Scaling the M-value itself would reject an undived diver.
		assert.Less(t, 0.1*c.MValue(AmbientPressure(0)), surface, "compartment %d", i+1)
	}
	assert.True(t, NewTissues().Clear(0, 0.1))
}
