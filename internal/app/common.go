package app

import "github.com/alexanderramin/fathom/internal/domain"

// Settings echoes the effective defaults a response was computed with.
type Settings struct {
	Units         domain.Units
	SurfacePolicy domain.SurfaceIntervalPolicy
	GFLow         float64
	GFHigh        float64
	AscentRate    float64
	StopCap       int
}

// CountBySeverity tallies advisories for summary lines.
func CountBySeverity(list []domain.Advisory) map[domain.Severity]int {
	out := make(map[domain.Severity]int, 3)
	for _, a := range list {
		out[a.Severity]++
	}
	return out
}
