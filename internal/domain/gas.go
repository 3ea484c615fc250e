package domain

import (
	"fmt"
	"math"
)

// GasMix is a breathing gas composition. Fractions are whole percentages;
// nitrogen makes up the balance.
type GasMix struct {
	ID    string
	O2Pct float64
	HePct float64
	// MOD is the maximum operating depth in metres.
	MOD float64
}

// N2Pct returns the nitrogen percentage of the mix.
func (g GasMix) N2Pct() float64 {
	return 100 - g.O2Pct - g.HePct
}

// O2Fraction returns the oxygen fraction in the range 0..1.
func (g GasMix) O2Fraction() float64 { return g.O2Pct / 100 }

// HeFraction returns the helium fraction in the range 0..1.
func (g GasMix) HeFraction() float64 { return g.HePct / 100 }

// Validate checks that the mix fractions are physically meaningful.
func (g GasMix) Validate() error {
	if math.IsNaN(g.O2Pct) || g.O2Pct <= 0 || g.O2Pct > 100 {
		return InvalidInput("gas", fmt.Sprintf("%s: oxygen must be in (0, 100], got %v", g.ID, g.O2Pct))
	}
	if math.IsNaN(g.HePct) || g.HePct < 0 {
		return InvalidInput("gas", fmt.Sprintf("%s: helium must not be negative, got %v", g.ID, g.HePct))
	}
	if g.O2Pct+g.HePct > 100 {
		return InvalidInput("gas", fmt.Sprintf("%s: oxygen plus helium exceeds 100%%", g.ID))
	}
	return nil
}

const (
	// BottomGasPPO2 is the oxygen partial pressure limit for working gases.
	BottomGasPPO2 = 1.4
	// DecoGasPPO2 is the oxygen partial pressure limit for decompression gases.
	DecoGasPPO2 = 1.6
)

// MaxOperatingDepth returns the depth in metres, rounded down to a whole
// metre, at which the mix reaches the given oxygen partial pressure.
func MaxOperatingDepth(o2Pct, ppO2 float64) float64 {
	if o2Pct <= 0 {
		return 0
	}
	return math.Floor((ppO2/(o2Pct/100) - 1) * 10)
}

const (
	GasAir    = "air"
	GasEAN32  = "ean32"
	GasEAN36  = "ean36"
	GasEAN50  = "ean50"
	GasOxygen = "oxygen"
	GasTx2135 = "tx21/35"
	GasTx1845 = "tx18/45"
)

var gasCatalog = []GasMix{
	{ID: GasAir, O2Pct: 21, HePct: 0, MOD: 56},
	{ID: GasEAN32, O2Pct: 32, HePct: 0, MOD: 33},
	{ID: GasEAN36, O2Pct: 36, HePct: 0, MOD: 28},
	{ID: GasEAN50, O2Pct: 50, HePct: 0, MOD: 22},
	{ID: GasOxygen, O2Pct: 100, HePct: 0, MOD: 6},
	{ID: GasTx2135, O2Pct: 21, HePct: 35, MOD: 56},
	{ID: GasTx1845, O2Pct: 18, HePct: 45, MOD: 67},
}

var gasIndex = func() map[string]int {
	idx := make(map[string]int, len(gasCatalog))
	for i, g := range gasCatalog {
		idx[g.ID] = i
	}
	return idx
}()

// LookupGas returns the catalogued mix with the given id.
func LookupGas(id string) (GasMix, bool) {
	i, ok := gasIndex[id]
	if !ok {
		return GasMix{}, false
	}
	return gasCatalog[i], true
}

// MustGas is LookupGas for ids known at compile time.
func MustGas(id string) GasMix {
	g, ok := LookupGas(id)
	if !ok {
		panic("domain: unknown gas " + id)
	}
	return g
}

// Gases returns the catalog in display order. The slice is a copy.
func Gases() []GasMix {
	out := make([]GasMix, len(gasCatalog))
	copy(out, gasCatalog)
	return out
}
