// Package deco schedules a technical decompression ascent on top of the
// buhlmann tissue model: first-stop search, gas switches, and stop timing.
package deco

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fathom/internal/domain"
)

// Options holds the scheduler constants. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// StopIncrement is the spacing of the stop grid in metres.
	StopIncrement float64
	// StopCapMinutes bounds the time spent at any single stop.
	StopCapMinutes int
	// ShallowStops are always held, even with no ceiling obligation.
	ShallowStops []float64
	// MinShallowStopMinutes is the minimum hold at a shallow stop.
	MinShallowStopMinutes int
}

func DefaultOptions() Options {
	return Options{
		StopIncrement:         3,
		StopCapMinutes:        60,
		ShallowStops:          []float64{6, 3},
		MinShallowStopMinutes: 1,
	}
}

func (o Options) validate() error {
	if !(o.StopIncrement > 0) {
		return domain.InvalidInput("stop_increment", "must be positive")
	}
	if o.StopCapMinutes <= 0 {
		return domain.InvalidInput("stop_cap", "must be positive")
	}
	if o.MinShallowStopMinutes < 0 {
		return domain.InvalidInput("min_shallow_stop", "must not be negative")
	}
	return nil
}

// Request describes one technical dive. Gradient factors are percentages and
// AscentRate is metres per minute.
type Request struct {
	MaxDepth   float64
	BottomTime float64
	BottomGas  domain.GasMix
	DecoGases  domain.DecoGasPolicy
	GFLow      float64
	GFHigh     float64
	AscentRate float64
}

func (r Request) validate() error {
	if !positive(r.MaxDepth) {
		return domain.InvalidInput("max_depth", fmt.Sprintf("must be a positive number, got %v", r.MaxDepth))
	}
	if !positive(r.BottomTime) {
		return domain.InvalidInput("bottom_time", fmt.Sprintf("must be a positive number, got %v", r.BottomTime))
	}
	if err := r.BottomGas.Validate(); err != nil {
		return err
	}
	if !domain.ValidDecoGasPolicies[string(r.DecoGases)] {
		return domain.InvalidInput("deco_gas", fmt.Sprintf("unknown policy %q", r.DecoGases))
	}
	if !positive(r.GFLow) || r.GFLow > 100 {
		return domain.InvalidInput("gf_low", fmt.Sprintf("must be in (0, 100], got %v", r.GFLow))
	}
	if !positive(r.GFHigh) || r.GFHigh > 100 {
		return domain.InvalidInput("gf_high", fmt.Sprintf("must be in (0, 100], got %v", r.GFHigh))
	}
	if !positive(r.AscentRate) {
		return domain.InvalidInput("ascent_rate", fmt.Sprintf("must be a positive number, got %v", r.AscentRate))
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
