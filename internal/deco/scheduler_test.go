package deco

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/alexanderramin/fathom/internal/buhlmann"
	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airRequest(depth, minutes float64) Request {
	return Request{
		MaxDepth:   depth,
		BottomTime: minutes,
		BottomGas:  domain.MustGas(domain.GasAir),
		DecoGases:  domain.DecoGasNone,
		GFLow:      30,
		GFHigh:     70,
		AscentRate: 9,
	}
}

func TestSchedule_30m25min_Air(t *testing.T) {
	plan, err := Schedule(airRequest(30, 25), DefaultOptions())
	require.NoError(t, err)

	assert.Zero(t, math.Mod(plan.FirstStop, 3), "first stop must sit on the 3m grid")
	assert.LessOrEqual(t, plan.FirstStop, 9.0)
	assert.GreaterOrEqual(t, plan.TotalDecoTime, 0.0)

	require.NotEmpty(t, plan.Profile)
	assert.Equal(t, domain.PhaseBottom, plan.Profile[0].Phase)
	assert.Equal(t, 30.0, plan.Profile[0].Depth)
	last := plan.Profile[len(plan.Profile)-1]
	assert.Equal(t, 0.0, last.Depth)
	assert.Equal(t, domain.PhaseAscent, last.Phase)
	assert.InDelta(t, plan.TotalRuntime, last.Runtime, 1e-9)
	assert.Empty(t, plan.Warnings)
}

func TestSchedule_ShallowStopsAlwaysHeld(t *testing.T) {
	plan, err := Schedule(airRequest(30, 25), DefaultOptions())
	require.NoError(t, err)

	var depths []float64
	for _, st := range plan.DecoStops {
		depths = append(depths, st.Depth)
		assert.GreaterOrEqual(t, st.Duration, 1.0)
		assert.GreaterOrEqual(t, st.Leading, 1)
		assert.LessOrEqual(t, st.Leading, 16)
	}
	assert.Contains(t, depths, 6.0)
	assert.Contains(t, depths, 3.0)
}

func TestSchedule_TotalsMatchSegments(t *testing.T) {
	plan, err := Schedule(airRequest(40, 30), DefaultOptions())
	require.NoError(t, err)

	var deco, total float64
	for _, seg := range plan.Profile {
		total += seg.Duration
		if seg.Phase == domain.PhaseDecoStop {
			deco += seg.Duration
		}
	}
	assert.InDelta(t, plan.TotalDecoTime, deco, 1e-9)
	assert.InDelta(t, plan.TotalRuntime, total, 1e-9)
}

func TestSchedule_GasSwitches(t *testing.T) {
	req := airRequest(40, 30)
	req.DecoGases = domain.DecoGasEAN50AndO2
	plan, err := Schedule(req, DefaultOptions())
	require.NoError(t, err)

	var switches []domain.Segment
	for _, seg := range plan.Profile {
		if seg.Phase == domain.PhaseGasSwitch {
			switches = append(switches, seg)
		}
	}
	require.Len(t, switches, 2)
	assert.Equal(t, 21.0, switches[0].Depth)
	assert.Equal(t, domain.GasEAN50, switches[0].Gas)
	assert.Zero(t, switches[0].Duration)
	assert.Equal(t, 6.0, switches[1].Depth)
	assert.Equal(t, domain.GasOxygen, switches[1].Gas)

	// Richer gas shortens the obligation.
	airOnly, err := Schedule(airRequest(40, 30), DefaultOptions())
	require.NoError(t, err)
	assert.Less(t, plan.TotalDecoTime, airOnly.TotalDecoTime)
}

func TestScheduleSwitches_OnlyBelowSwitchDepth(t *testing.T) {
	assert.Empty(t, ScheduleSwitches(domain.DecoGasEAN50, 21))
	assert.Len(t, ScheduleSwitches(domain.DecoGasEAN50, 24), 1)
	assert.Empty(t, ScheduleSwitches(domain.DecoGasOxygen, 6))
	assert.Len(t, ScheduleSwitches(domain.DecoGasEAN50AndO2, 18), 1)
	assert.Empty(t, ScheduleSwitches(domain.DecoGasNone, 60))
}

func TestSchedule_ExceedsMODIsAdvisory(t *testing.T) {
	req := airRequest(30, 20)
	req.BottomGas = domain.MustGas(domain.GasEAN32)
	req.MaxDepth = 36
	plan, err := Schedule(req, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, domain.HasAdvisory(plan.Warnings, domain.AdviceExceedsMOD))
	assert.Equal(t, 0.0, plan.Profile[len(plan.Profile)-1].Depth)
}

func TestSchedule_UnresolvableCeiling(t *testing.T) {
	req := airRequest(30, 25)
	req.GFLow, req.GFHigh = 1, 1
	opts := DefaultOptions()

	plan, err := Schedule(req, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolvableCeiling))

	var ce *CeilingError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, opts.StopCapMinutes, ce.Minutes)

	require.NotNil(t, plan, "partial profile must be returned for diagnostics")
	last := plan.Profile[len(plan.Profile)-1]
	assert.Equal(t, domain.PhaseDecoStop, last.Phase)
	assert.Equal(t, ce.Depth, last.Depth)
	assert.Equal(t, float64(opts.StopCapMinutes), last.Duration)
}

func TestSchedule_CapIsConfigurable(t *testing.T) {
	opts := DefaultOptions()
	opts.StopCapMinutes = 2
	_, err := Schedule(airRequest(45, 40), opts)
	assert.ErrorIs(t, err, domain.ErrUnresolvableCeiling)
}

func TestSchedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero depth", func(r *Request) { r.MaxDepth = 0 }},
		{"NaN depth", func(r *Request) { r.MaxDepth = math.NaN() }},
		{"negative time", func(r *Request) { r.BottomTime = -5 }},
		{"bad gas", func(r *Request) { r.BottomGas = domain.GasMix{ID: "x", O2Pct: 60, HePct: 50} }},
		{"unknown policy", func(r *Request) { r.DecoGases = "argon" }},
		{"gf low zero", func(r *Request) { r.GFLow = 0 }},
		{"gf high over 100", func(r *Request) { r.GFHigh = 120 }},
		{"zero ascent rate", func(r *Request) { r.AscentRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := airRequest(30, 25)
			tt.mutate(&req)
			plan, err := Schedule(req, DefaultOptions())
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFirstStop_NoObligation(t *testing.T) {
	tis := buhlmann.NewTissues()
	tis.Load(12, domain.MustGas(domain.GasAir), 10)
	assert.Equal(t, 0.0, FirstStop(tis, 12, 70, 3))
}

func TestFirstStop_DeepDiveHasStop(t *testing.T) {
	tis := buhlmann.NewTissues()
	tis.Load(50, domain.MustGas(domain.GasAir), 30)
	fs := FirstStop(tis, 50, 70, 3)
	assert.Greater(t, fs, 0.0)
	assert.LessOrEqual(t, fs, 48.0)
	assert.Zero(t, math.Mod(fs, 3))
	// The stop depth itself must be tolerated under gfHigh.
	assert.True(t, tis.Clear(fs, 0.7))
	assert.False(t, tis.Clear(fs-3, 0.7))
}

func TestStopTime_RespectsMinimum(t *testing.T) {
	tis := buhlmann.NewTissues()
	air := domain.MustGas(domain.GasAir)
	minutes, err := StopTime(tis, 3, 0, 0.7, air, 3, 60)
	require.NoError(t, err)
	assert.Equal(t, 3, minutes)
}

// TestSchedule_Invariant_SegmentsWellFormed property-tests every emitted
// segment: non-negative durations, non-decreasing runtime, and a surface
// finish whenever planning succeeds.
func TestSchedule_Invariant_SegmentsWellFormed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	policies := []domain.DecoGasPolicy{domain.DecoGasNone, domain.DecoGasEAN50, domain.DecoGasOxygen, domain.DecoGasEAN50AndO2}

	for trial := 0; trial < 150; trial++ {
		gfLow := float64(rng.Intn(60) + 10)
		req := Request{
			MaxDepth:   float64(rng.Intn(60) + 6),
			BottomTime: float64(rng.Intn(50) + 5),
			BottomGas:  domain.MustGas(domain.GasAir),
			DecoGases:  policies[rng.Intn(len(policies))],
			GFLow:      gfLow,
			GFHigh:     gfLow + float64(rng.Intn(int(100-gfLow)+1)),
			AscentRate: float64(rng.Intn(10) + 5),
		}

		plan, err := Schedule(req, DefaultOptions())
		if err != nil {
			require.ErrorIs(t, err, domain.ErrUnresolvableCeiling, "trial %d", trial)
		}
		require.NotNil(t, plan, "trial %d", trial)

		prev := 0.0
		for i, seg := range plan.Profile {
			assert.GreaterOrEqual(t, seg.Duration, 0.0, "trial %d segment %d", trial, i)
			assert.GreaterOrEqual(t, seg.Runtime, prev, "trial %d segment %d", trial, i)
			prev = seg.Runtime
		}
		if err == nil {
			assert.Equal(t, 0.0, plan.Profile[len(plan.Profile)-1].Depth, "trial %d", trial)
		}
	}
}
