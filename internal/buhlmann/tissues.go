package buhlmann

import (
	"github.com/alexanderramin/fathom/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// Tissues is the per-request nitrogen loading of the sixteen compartments.
// It is not safe for concurrent use; each plan owns its own value.
type Tissues struct {
	p [len(ZHL16C)]float64
}

// NewTissues returns compartments saturated at the surface on air.
func NewTissues() *Tissues {
	t := &Tissues{}
	surface := InspiredInertPressure(0, domain.MustGas(domain.GasAir))
	for i := range t.p {
		t.p[i] = surface
	}
	return t
}

// Pressures returns a copy of the current loadings in bar.
func (t *Tissues) Pressures() []float64 {
	out := make([]float64, len(t.p))
	copy(out, t.p[:])
	return out
}

// Load applies a constant-depth exposure to every compartment.
func (t *Tissues) Load(depth float64, gas domain.GasMix, minutes float64) {
	t.load(InspiredInertPressure(depth, gas), minutes)
}

// LoadTravel applies a depth change, using the mean of the inspired pressures
// at both ends as the constant proxy for the leg.
func (t *Tissues) LoadTravel(from, to float64, gas domain.GasMix, minutes float64) {
	pi := (InspiredInertPressure(from, gas) + InspiredInertPressure(to, gas)) / 2
	t.load(pi, minutes)
}

func (t *Tissues) load(pInspired, minutes float64) {
	if minutes <= 0 {
		return
	}
	for i, c := range ZHL16C {
		t.p[i] = Schreiner(t.p[i], pInspired, c.HalfTime, minutes)
	}
}

// Clear reports whether every compartment is within its tolerated pressure
// at depth under gradient factor gf.
func (t *Tissues) Clear(depth, gf float64) bool {
	for i, c := range ZHL16C {
		if t.p[i] > c.Tolerated(depth, gf) {
			return false
		}
	}
	return true
}

// Leading returns the 1-based index of the compartment closest to (or
// furthest past) its tolerated pressure at depth.
func (t *Tissues) Leading(depth, gf float64) int {
	ratios := make([]float64, len(t.p))
	for i, c := range ZHL16C {
		ratios[i] = t.p[i] / c.Tolerated(depth, gf)
	}
	return floats.MaxIdx(ratios) + 1
}

// Ceiling returns the shallowest depth, in metres and not below zero, at
// which every compartment is tolerated under gf. It solves the tolerance
// equation per compartment and takes the deepest result.
func (t *Tissues) Ceiling(gf float64) float64 {
	deepest := 0.0
	for i, c := range ZHL16C {
		// p <= pAmb + gf*(a + pAmb/b - pAmb)  =>  pAmb >= (p - gf*a) / (1 - gf + gf/b)
		pAmb := (t.p[i] - gf*c.A) / (1 - gf + gf/c.B)
		depth := (pAmb - SurfacePressure) * MetresPerBar
		if depth > deepest {
			deepest = depth
		}
	}
	return deepest
}
