package tables

import (
	"math"

	"github.com/alexanderramin/fathom/internal/domain"
)

// IntervalCredit maps elapsed surface minutes to the group reached.
type IntervalCredit struct {
	Minutes float64
	Group   domain.PressureGroup
}

// SurfaceIntervalRow holds the credits for one starting group, ordered by
// increasing minutes. The first credit is always {0, Start}.
type SurfaceIntervalRow struct {
	Start   domain.PressureGroup
	Credits []IntervalCredit
}

// creditCadence is the minutes of surface time credited per group in the
// threshold table.
const creditCadence = 60

var surfaceRows = func() map[domain.PressureGroup]SurfaceIntervalRow {
	rows := make(map[domain.PressureGroup]SurfaceIntervalRow, domain.GroupO-domain.GroupA+1)
	for g := domain.GroupA; g <= domain.GroupO; g++ {
		r := SurfaceIntervalRow{Start: g}
		for step, to := 0, g; to >= domain.GroupA; step, to = step+1, to-1 {
			r.Credits = append(r.Credits, IntervalCredit{Minutes: float64(step * creditCadence), Group: to})
		}
		rows[g] = r
	}
	return rows
}()

// SurfaceRow returns the threshold row for start.
func SurfaceRow(start domain.PressureGroup) (SurfaceIntervalRow, bool) {
	r, ok := surfaceRows[start]
	return r, ok
}

// Credit returns the group for the largest threshold not exceeding minutes.
func (r SurfaceIntervalRow) Credit(minutes float64) domain.PressureGroup {
	group := r.Start
	for _, c := range r.Credits {
		if minutes < c.Minutes {
			break
		}
		group = c.Group
	}
	return group
}

// dropMinutes is the surface time needed to fall one group from the keyed
// group. More loaded groups off-gas faster.
var dropMinutes = map[domain.PressureGroup]float64{
	'B': 70, 'C': 60, 'D': 55, 'E': 50, 'F': 45, 'G': 40, 'H': 36,
	'I': 33, 'J': 30, 'K': 28, 'L': 26, 'M': 24, 'N': 22, 'O': 20,
}

// DropMinutes returns the minutes needed to fall one group from g. Group A
// is fully desaturated and reports +Inf.
func DropMinutes(g domain.PressureGroup) float64 {
	m, ok := dropMinutes[g]
	if !ok {
		return math.Inf(1)
	}
	return m
}

// StepCredit spends surface minutes one group at a time: while a full
// drop interval remains and the group is above A, descend one letter.
func StepCredit(start domain.PressureGroup, minutes float64) domain.PressureGroup {
	g := start
	for g > domain.GroupA {
		need := DropMinutes(g)
		if minutes < need {
			break
		}
		minutes -= need
		g = g.Lower()
	}
	return g
}

// FullDesaturationMinutes is the surface time after which start reaches A
// under the given policy.
func FullDesaturationMinutes(start domain.PressureGroup, policy domain.SurfaceIntervalPolicy) float64 {
	if policy == domain.SurfacePolicyStepwise {
		var total float64
		for g := start; g > domain.GroupA; g = g.Lower() {
			total += DropMinutes(g)
		}
		return total
	}
	return float64(int(start-domain.GroupA) * creditCadence)
}
