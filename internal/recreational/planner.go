// Package recreational answers table-based no-decompression questions: the
// NDL and ending pressure group of a dive, the group after a surface
// interval, and the gas a dive will consume.
package recreational

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/alexanderramin/fathom/internal/tables"
)

// DivePlan is the result of a single recreational dive lookup.
type DivePlan struct {
	Depth         float64
	BandDepth     float64
	NDL           float64
	PressureGroup domain.PressureGroup
	// TimeRemaining is NDL minus bottom time; negative means exceeded.
	TimeRemaining float64
	WithinLimits  bool
	OutOfTable    bool
	OverLimit     bool
	Advisories    []domain.Advisory
}

// PlanDive looks the dive up in table, rounding depth up to the next band.
// Exceeding the table or the NDL is reported on the result, never as an error.
func PlanDive(table tables.Table, depth, bottomTime float64) (DivePlan, error) {
	if !positive(depth) {
		return DivePlan{}, domain.InvalidInput("depth", fmt.Sprintf("must be a positive number, got %v", depth))
	}
	if !positive(bottomTime) {
		return DivePlan{}, domain.InvalidInput("bottom_time", fmt.Sprintf("must be a positive number, got %v", bottomTime))
	}

	band, outOfTable := table.FindBand(depth)
	group, overLimit := band.PressureGroup(bottomTime)

	plan := DivePlan{
		Depth:         depth,
		BandDepth:     band.MaxDepth,
		NDL:           band.NDL,
		PressureGroup: group,
		TimeRemaining: band.NDL - bottomTime,
		WithinLimits:  bottomTime <= band.NDL,
		OutOfTable:    outOfTable,
		OverLimit:     overLimit,
	}
	plan.Advisories = diveAdvisories(table.Units, plan)
	return plan, nil
}

// SurfaceInterval is the outcome of crediting surface time to a group.
type SurfaceInterval struct {
	Start      domain.PressureGroup
	Minutes    float64
	Group      domain.PressureGroup
	Policy     domain.SurfaceIntervalPolicy
	Advisories []domain.Advisory
}

// PlanSurfaceInterval credits minutes of surface time to start under policy.
// Zero minutes returns start unchanged.
func PlanSurfaceInterval(start domain.PressureGroup, minutes float64, policy domain.SurfaceIntervalPolicy) (SurfaceInterval, error) {
	if !start.Valid() {
		return SurfaceInterval{}, domain.InvalidInput("group", fmt.Sprintf("unrecognized pressure group %q", start))
	}
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		return SurfaceInterval{}, domain.InvalidInput("minutes", fmt.Sprintf("must be a non-negative number, got %v", minutes))
	}

	var group domain.PressureGroup
	switch policy {
	case domain.SurfacePolicyThreshold, "":
		policy = domain.SurfacePolicyThreshold
		row, ok := tables.SurfaceRow(start)
		if !ok {
			return SurfaceInterval{}, domain.InvalidInput("group", fmt.Sprintf("no surface interval row for %s", start))
		}
		group = row.Credit(minutes)
	case domain.SurfacePolicyStepwise:
		group = tables.StepCredit(start, minutes)
	default:
		return SurfaceInterval{}, domain.InvalidInput("policy", fmt.Sprintf("unknown surface interval policy %q", policy))
	}

	si := SurfaceInterval{
		Start:   start,
		Minutes: minutes,
		Group:   group,
		Policy:  policy,
	}
	si.Advisories = surfaceAdvisories(si)
	return si, nil
}

// AirConsumption is the gas needed for a constant-depth exposure.
type AirConsumption struct {
	Liters float64
	Bars   float64
	// RemainingBars and Sufficient are only set when a start pressure is known.
	RemainingBars float64
	Sufficient    bool
	Advisories    []domain.Advisory
}

// AirInput describes a consumption question. StartBars and ReserveBars are
// optional; leave StartBars at zero to skip the sufficiency check.
type AirInput struct {
	Depth       float64
	Minutes     float64
	TankLiters  float64
	SACRate     float64
	StartBars   float64
	ReserveBars float64
}

// ComputeAirConsumption returns litres of surface-equivalent gas and the
// corresponding tank pressure drop.
func ComputeAirConsumption(in AirInput) (AirConsumption, error) {
	switch {
	case !positive(in.Depth):
		return AirConsumption{}, domain.InvalidInput("depth", fmt.Sprintf("must be a positive number, got %v", in.Depth))
	case !positive(in.Minutes):
		return AirConsumption{}, domain.InvalidInput("minutes", fmt.Sprintf("must be a positive number, got %v", in.Minutes))
	case !positive(in.TankLiters):
		return AirConsumption{}, domain.InvalidInput("tank", fmt.Sprintf("must be a positive number, got %v", in.TankLiters))
	case !positive(in.SACRate):
		return AirConsumption{}, domain.InvalidInput("sac", fmt.Sprintf("must be a positive number, got %v", in.SACRate))
	case in.StartBars < 0 || in.ReserveBars < 0:
		return AirConsumption{}, domain.InvalidInput("pressure", "start and reserve pressure must not be negative")
	}

	liters := (in.Depth/10 + 1) * in.SACRate * in.Minutes
	out := AirConsumption{
		Liters: liters,
		Bars:   liters / in.TankLiters,
	}
	if in.StartBars > 0 {
		out.RemainingBars = in.StartBars - out.Bars
		out.Sufficient = out.RemainingBars >= in.ReserveBars
		if !out.Sufficient {
			out.Advisories = append(out.Advisories, domain.Advisory{
				Code:     domain.AdviceGasInsufficient,
				Severity: domain.SeverityDanger,
				Message: fmt.Sprintf("planned use of %.0f bar leaves %.0f bar, below the %.0f bar reserve",
					out.Bars, out.RemainingBars, in.ReserveBars),
			})
		}
	}
	return out, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
