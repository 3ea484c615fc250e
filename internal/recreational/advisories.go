package recreational

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/domain"
)

type depthTiers struct {
	unit         string
	beginner     float64
	intermediate float64
	limit        float64
	safetyStop   string
	ascentRate   string
}

var tiers = map[domain.Units]depthTiers{
	domain.UnitsMetric: {
		unit: "m", beginner: 18, intermediate: 30, limit: 40,
		safetyStop: "3 minutes at 5 m", ascentRate: "9 m per minute",
	},
	domain.UnitsImperial: {
		unit: "ft", beginner: 60, intermediate: 100, limit: 130,
		safetyStop: "3-5 minutes at 15 ft", ascentRate: "30 ft per minute",
	},
}

const nearNDLMargin = 5

func tiersFor(u domain.Units) depthTiers {
	if t, ok := tiers[u]; ok {
		return t
	}
	return tiers[domain.UnitsMetric]
}

func diveAdvisories(units domain.Units, p DivePlan) []domain.Advisory {
	t := tiersFor(units)
	var out []domain.Advisory
	add := func(code domain.AdvisoryCode, sev domain.Severity, format string, args ...any) {
		out = append(out, domain.Advisory{Code: code, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case p.Depth > t.limit:
		add(domain.AdviceDepthUnsafe, domain.SeverityDanger, "depth exceeds the %g %s recreational limit", t.limit, t.unit)
	case p.Depth > t.intermediate:
		add(domain.AdviceDepthAdvanced, domain.SeverityCaution, "advanced depth, ensure proper certification")
	case p.Depth > t.beginner:
		add(domain.AdviceDepthIntermediate, domain.SeverityCaution, "intermediate depth level")
	default:
		add(domain.AdviceDepthBeginner, domain.SeverityInfo, "depth within beginner-friendly range")
	}

	if p.OutOfTable {
		add(domain.AdviceOutOfTable, domain.SeverityDanger, "depth is beyond the table; using the %g %s row", p.BandDepth, t.unit)
	}
	switch {
	case !p.WithinLimits:
		add(domain.AdviceExceedsNDL, domain.SeverityDanger, "bottom time exceeds the %g min no-decompression limit by %g min", p.NDL, -p.TimeRemaining)
	case p.TimeRemaining <= nearNDLMargin:
		add(domain.AdviceNearNDL, domain.SeverityCaution, "only %g min below the no-decompression limit", p.TimeRemaining)
	}
	if p.OverLimit {
		add(domain.AdviceOverTableLimit, domain.SeverityDanger, "bottom time is past the last pressure group; %s is a lower bound", p.PressureGroup)
	}

	add(domain.AdviceSafetyStop, domain.SeverityInfo, "perform a safety stop: %s", t.safetyStop)
	add(domain.AdviceAscentRate, domain.SeverityInfo, "ascend no faster than %s", t.ascentRate)
	if p.Depth >= t.beginner {
		add(domain.AdviceDiveComputer, domain.SeverityInfo, "consider a dive computer for real-time monitoring")
	}
	if p.PressureGroup >= domain.GroupF {
		add(domain.AdviceLongInterval, domain.SeverityInfo, "plan a surface interval of 60 minutes or more before the next dive")
	}
	return out
}

func surfaceAdvisories(si SurfaceInterval) []domain.Advisory {
	var out []domain.Advisory
	if si.Group == si.Start && si.Start != domain.GroupA {
		out = append(out, domain.Advisory{
			Code:     domain.AdviceNoImprovement,
			Severity: domain.SeverityCaution,
			Message:  "pressure group has not improved yet; consider a longer surface interval",
		})
	}
	if si.Group != domain.GroupA {
		out = append(out, domain.Advisory{
			Code:     domain.AdviceResidualNitrogen,
			Severity: domain.SeverityInfo,
			Message:  "residual nitrogen remains; plan the repetitive dive conservatively",
		})
	} else {
		out = append(out, domain.Advisory{
			Code:     domain.AdviceMinimalNitrogen,
			Severity: domain.SeverityInfo,
			Message:  "minimal residual nitrogen (group A)",
		})
	}
	return out
}
