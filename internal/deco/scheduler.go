package deco

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexanderramin/fathom/internal/buhlmann"
	"github.com/alexanderramin/fathom/internal/domain"
)

// Plan is the scheduled profile of a technical dive.
type Plan struct {
	Profile       []domain.Segment
	DecoStops     []domain.DecoStop
	FirstStop     float64
	TotalRuntime  float64
	TotalDecoTime float64
	Warnings      []domain.Advisory
}

// GasSwitch is a scheduled change to a richer mix on the way up.
type GasSwitch struct {
	Depth float64
	Gas   domain.GasMix
}

const (
	ean50SwitchDepth  = 21
	oxygenSwitchDepth = 6
)

// ScheduleSwitches returns the switches implied by policy for a dive to
// maxDepth, deepest first. A switch is only scheduled when the dive goes
// deeper than its depth.
func ScheduleSwitches(policy domain.DecoGasPolicy, maxDepth float64) []GasSwitch {
	var out []GasSwitch
	if (policy == domain.DecoGasEAN50 || policy == domain.DecoGasEAN50AndO2) && maxDepth > ean50SwitchDepth {
		out = append(out, GasSwitch{Depth: ean50SwitchDepth, Gas: domain.MustGas(domain.GasEAN50)})
	}
	if (policy == domain.DecoGasOxygen || policy == domain.DecoGasEAN50AndO2) && maxDepth > oxygenSwitchDepth {
		out = append(out, GasSwitch{Depth: oxygenSwitchDepth, Gas: domain.MustGas(domain.GasOxygen)})
	}
	return out
}

// FirstStop scans the stop grid upward from the deepest grid depth not below
// maxDepth, using gfHigh alone. The first depth a compartment cannot tolerate
// puts the first stop one increment deeper; a clear scan returns 0.
func FirstStop(t *buhlmann.Tissues, maxDepth, gfHigh, increment float64) float64 {
	start := math.Floor(maxDepth/increment) * increment
	gf := gfHigh / 100
	for d := start; d >= 0; d -= increment {
		if !t.Clear(d, gf) {
			return math.Min(d+increment, start)
		}
	}
	return 0
}

// StopTime holds the tissues at depth in one-minute steps until they
// tolerate target under gf, and for at least minimum minutes. It gives up
// with a *CeilingError once capMinutes have been spent.
func StopTime(t *buhlmann.Tissues, depth, target, gf float64, gas domain.GasMix, minimum, capMinutes int) (int, error) {
	minutes := 0
	for minutes < minimum || !t.Clear(target, gf) {
		if minutes >= capMinutes {
			return minutes, &CeilingError{Depth: depth, Minutes: minutes, Leading: t.Leading(target, gf)}
		}
		t.Load(depth, gas, 1)
		minutes++
	}
	return minutes, nil
}

// Schedule plans the dive. On an unresolvable ceiling it returns the plan up
// to and including the failed stop together with an error wrapping
// domain.ErrUnresolvableCeiling.
func Schedule(req Request, opts Options) (*Plan, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	s := &scheduler{req: req, opts: opts, plan: &Plan{}, gas: req.BottomGas}

	if req.MaxDepth > req.BottomGas.MOD {
		s.plan.Warnings = append(s.plan.Warnings, domain.Advisory{
			Code:     domain.AdviceExceedsMOD,
			Severity: domain.SeverityDanger,
			Message: fmt.Sprintf("max depth %gm exceeds the %s MOD of %gm",
				req.MaxDepth, req.BottomGas.ID, req.BottomGas.MOD),
		})
	}

	tissues := buhlmann.NewTissues()
	tissues.Load(req.MaxDepth, req.BottomGas, req.BottomTime)
	s.runtime = req.BottomTime
	s.emit(domain.PhaseBottom, req.MaxDepth, req.BottomTime)

	s.plan.FirstStop = FirstStop(tissues, req.MaxDepth, req.GFHigh, opts.StopIncrement)

	err := s.ascend(tissues)
	s.finish()
	return s.plan, err
}

type scheduler struct {
	req     Request
	opts    Options
	plan    *Plan
	gas     domain.GasMix
	runtime float64
	travel  float64
}

func (s *scheduler) ascend(t *buhlmann.Tissues) error {
	inc := s.opts.StopIncrement
	switches := ScheduleSwitches(s.req.DecoGases, s.req.MaxDepth)
	depth := s.req.MaxDepth

	for depth > 0 {
		next := math.Max(0, math.Ceil(depth/inc)*inc-inc)
		dt := (depth - next) / s.req.AscentRate
		t.LoadTravel(depth, next, s.gas, dt)
		s.runtime += dt
		s.travel += dt
		depth = next
		if depth == 0 {
			break
		}

		for len(switches) > 0 && depth <= switches[0].Depth {
			s.flushAscent(depth)
			s.gas = switches[0].Gas
			switches = switches[1:]
			s.emit(domain.PhaseGasSwitch, depth, 0)
		}

		// Look one increment ahead: hold here until the next grid depth is
		// tolerated.
		target := math.Max(0, depth-inc)
		gf := buhlmann.GradientFactor(target, s.plan.FirstStop, s.req.GFLow, s.req.GFHigh)
		shallow := slices.Contains(s.opts.ShallowStops, depth)
		if !shallow && t.Clear(target, gf) {
			continue
		}

		minimum := 0
		if shallow {
			minimum = s.opts.MinShallowStopMinutes
		}
		leading := t.Leading(target, gf)
		minutes, err := StopTime(t, depth, target, gf, s.gas, minimum, s.opts.StopCapMinutes)
		s.flushAscent(depth)
		s.stop(depth, float64(minutes), leading)
		if err != nil {
			return fmt.Errorf("scheduling stop at %gm: %w", depth, err)
		}
	}
	s.flushAscent(0)
	return nil
}

func (s *scheduler) emit(phase domain.Phase, depth, duration float64) {
	s.plan.Profile = append(s.plan.Profile, domain.Segment{
		Phase:    phase,
		Depth:    depth,
		Duration: duration,
		Runtime:  s.runtime,
		Gas:      s.gas.ID,
	})
}

// flushAscent emits the travel accumulated since the last event as a single
// Ascent segment ending at depth.
func (s *scheduler) flushAscent(depth float64) {
	if s.travel <= 0 {
		return
	}
	s.emit(domain.PhaseAscent, depth, s.travel)
	s.travel = 0
}

func (s *scheduler) stop(depth, minutes float64, leading int) {
	s.runtime += minutes
	s.emit(domain.PhaseDecoStop, depth, minutes)
	s.plan.DecoStops = append(s.plan.DecoStops, domain.DecoStop{
		Depth:    depth,
		Duration: minutes,
		Leading:  leading,
	})
}

func (s *scheduler) finish() {
	s.plan.TotalRuntime = s.runtime
	var deco float64
	for _, st := range s.plan.DecoStops {
		deco += st.Duration
	}
	s.plan.TotalDecoTime = deco
}
