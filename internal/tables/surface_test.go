package tables

import (
	"testing"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceRow_Threshold(t *testing.T) {
	r, ok := SurfaceRow('D')
	require.True(t, ok)

	assert.Equal(t, domain.PressureGroup('D'), r.Credit(0))
	assert.Equal(t, domain.PressureGroup('D'), r.Credit(59))
	assert.Equal(t, domain.PressureGroup('C'), r.Credit(60))
	assert.Equal(t, domain.PressureGroup('B'), r.Credit(150))
	assert.Equal(t, domain.GroupA, r.Credit(180))
	assert.Equal(t, domain.GroupA, r.Credit(10_000))
}

func TestSurfaceRow_MatchesOriginalCadence(t *testing.T) {
	r, ok := SurfaceRow(domain.GroupL)
	require.True(t, ok)
	require.Len(t, r.Credits, 12)
	assert.Equal(t, IntervalCredit{Minutes: 660, Group: domain.GroupA}, r.Credits[11])

	_, ok = SurfaceRow('P')
	assert.False(t, ok)
}

func TestStepCredit_Boundaries(t *testing.T) {
	// Not enough time to drop a single group.
	assert.Equal(t, domain.PressureGroup('E'), StepCredit('E', 49))
	assert.Equal(t, domain.PressureGroup('D'), StepCredit('E', 50))
	// E->D 50, D->C 55
	assert.Equal(t, domain.PressureGroup('C'), StepCredit('E', 105))

	full := FullDesaturationMinutes('E', domain.SurfacePolicyStepwise)
	assert.Equal(t, 50.0+55+60+70, full)
	assert.Equal(t, domain.GroupA, StepCredit('E', full))
	assert.Equal(t, domain.PressureGroup('B'), StepCredit('E', full-1))
	assert.Equal(t, domain.GroupA, StepCredit(domain.GroupA, 500))
}

func TestCredit_MonotonicTowardA(t *testing.T) {
	for g := domain.GroupA; g <= domain.GroupO; g++ {
		r, ok := SurfaceRow(g)
		require.True(t, ok)
		prevThreshold, prevStep := g, g
		for m := 0.0; m <= 900; m += 5 {
			th := r.Credit(m)
			st := StepCredit(g, m)
			assert.LessOrEqual(t, th, prevThreshold, "threshold %s at %v", g, m)
			assert.LessOrEqual(t, st, prevStep, "stepwise %s at %v", g, m)
			prevThreshold, prevStep = th, st
		}
	}
}

func TestFullDesaturationMinutes_Threshold(t *testing.T) {
	assert.Equal(t, 0.0, FullDesaturationMinutes(domain.GroupA, domain.SurfacePolicyThreshold))
	assert.Equal(t, 660.0, FullDesaturationMinutes(domain.GroupL, domain.SurfacePolicyThreshold))
}
