// Package buhlmann implements the ZHL-16C inert-gas tissue model: the
// compartment parameter set, Schreiner loading, and gradient-factor
// tolerances used to decide whether a diver may ascend.
package buhlmann

import (
	"math"

	"github.com/alexanderramin/fathom/internal/domain"
)

// Compartment holds the immutable ZHL-16C nitrogen parameters.
type Compartment struct {
	HalfTime float64 // minutes
	A        float64 // bar
	B        float64
}

// ZHL16C is the nitrogen parameter set, fastest compartment first.
var ZHL16C = [16]Compartment{
	{HalfTime: 4.0, A: 1.2599, B: 0.5050},
	{HalfTime: 8.0, A: 1.0000, B: 0.6514},
	{HalfTime: 12.5, A: 0.8618, B: 0.7222},
	{HalfTime: 18.5, A: 0.7562, B: 0.7825},
	{HalfTime: 27.0, A: 0.6200, B: 0.8126},
	{HalfTime: 38.3, A: 0.5043, B: 0.8434},
	{HalfTime: 54.3, A: 0.4410, B: 0.8693},
	{HalfTime: 77.0, A: 0.4000, B: 0.8910},
	{HalfTime: 109.0, A: 0.3750, B: 0.9092},
	{HalfTime: 146.0, A: 0.3500, B: 0.9222},
	{HalfTime: 187.0, A: 0.3295, B: 0.9319},
	{HalfTime: 239.0, A: 0.3065, B: 0.9403},
	{HalfTime: 305.0, A: 0.2835, B: 0.9477},
	{HalfTime: 390.0, A: 0.2610, B: 0.9544},
	{HalfTime: 498.0, A: 0.2480, B: 0.9602},
	{HalfTime: 635.0, A: 0.2327, B: 0.9653},
}

const (
	// SurfacePressure is sea-level atmospheric pressure in bar.
	SurfacePressure = 1.0
	// MetresPerBar is the seawater depth adding one bar of pressure.
	MetresPerBar = 10.0
)

// AmbientPressure returns absolute pressure in bar at depth metres of seawater.
func AmbientPressure(depth float64) float64 {
	return SurfacePressure + depth/MetresPerBar
}

// InspiredInertPressure returns the nitrogen partial pressure breathed at
// depth on gas.
func InspiredInertPressure(depth float64, gas domain.GasMix) float64 {
	return AmbientPressure(depth) * (1 - gas.O2Fraction() - gas.HeFraction())
}

// Schreiner returns the compartment pressure after dt minutes at a constant
// inspired pressure.
func Schreiner(pOld, pInspired, halfTime, dt float64) float64 {
	k := math.Ln2 / halfTime
	return pInspired + (pOld-pInspired)*math.Exp(-k*dt)
}

// MValue returns the raw Bühlmann tolerated tissue pressure at ambient
// pressure pAmb.
func (c Compartment) MValue(pAmb float64) float64 {
	return c.A + pAmb/c.B
}

// Tolerated returns the maximum loading allowed at depth once the gradient
// factor gf (0..1) is applied to the supersaturation margin. This is Baker's
// form pAmb + gf*(M - pAmb), not gf*M, so a surface-saturated diver clears.
func (c Compartment) Tolerated(depth, gf float64) float64 {
	pAmb := AmbientPressure(depth)
	return pAmb + gf*(c.MValue(pAmb)-pAmb)
}

// GradientFactor returns the factor (0..1) in force at depth. With no
// decompression obligation gfHigh applies everywhere; otherwise it is
// interpolated linearly from gfLow at firstStop to gfHigh at the surface.
// gfLow and gfHigh are percentages.
func GradientFactor(depth, firstStop, gfLow, gfHigh float64) float64 {
	lo, hi := gfLow/100, gfHigh/100
	if firstStop <= 0 {
		return hi
	}
	if depth >= firstStop {
		return lo
	}
	if depth <= 0 {
		return hi
	}
	return hi + (lo-hi)*(depth/firstStop)
}
