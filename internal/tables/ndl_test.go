package tables

import (
	"testing"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Validate(t *testing.T) {
	require.NoError(t, Metric.Validate())
	require.NoError(t, Imperial.Validate())
}

func TestTable_Validate_RejectsBrokenRows(t *testing.T) {
	bad := Table{Units: domain.UnitsMetric, Bands: []DepthBand{
		row(10, 50, 10, 'A', 20, 'B', 40, 'C'),
	}}
	assert.ErrorContains(t, bad.Validate(), "final threshold")

	decreasing := Table{Units: domain.UnitsMetric, Bands: []DepthBand{
		row(10, 30, 10, 'C', 30, 'B'),
	}}
	assert.ErrorContains(t, decreasing.Validate(), "group B after C")

	unordered := Table{Units: domain.UnitsMetric, Bands: []DepthBand{
		row(12, 30, 30, 'A'),
		row(10, 30, 30, 'A'),
	}}
	assert.ErrorContains(t, unordered.Validate(), "not deeper")
}

func TestFindBand_RoundsUp(t *testing.T) {
	tests := []struct {
		depth      float64
		wantBand   float64
		outOfTable bool
	}{
		{depth: 1, wantBand: 10},
		{depth: 10, wantBand: 10},
		{depth: 10.5, wantBand: 12},
		{depth: 18, wantBand: 18},
		{depth: 23, wantBand: 25},
		{depth: 40, wantBand: 40},
		{depth: 45, wantBand: 40, outOfTable: true},
	}
	for _, tt := range tests {
		band, out := Metric.FindBand(tt.depth)
		assert.Equal(t, tt.wantBand, band.MaxDepth, "depth %v", tt.depth)
		assert.Equal(t, tt.outOfTable, out, "depth %v", tt.depth)
	}
}

func TestFindBand_NeverShallowerThanRequested(t *testing.T) {
	for _, table := range []Table{Metric, Imperial} {
		for d := 0.5; d <= table.Deepest(); d += 0.5 {
			band, out := table.FindBand(d)
			assert.False(t, out)
			assert.GreaterOrEqual(t, band.MaxDepth, d, "%s depth %v", table.Units, d)
		}
	}
}

func TestPressureGroup_18m(t *testing.T) {
	band, _ := Metric.FindBand(18)
	assert.Equal(t, 56.0, band.NDL)

	g, over := band.PressureGroup(40)
	assert.Equal(t, domain.PressureGroup('M'), g)
	assert.False(t, over)

	g, over = band.PressureGroup(57)
	assert.Equal(t, domain.GroupO, g)
	assert.True(t, over)
}

func TestPressureGroup_MonotonicWithTime(t *testing.T) {
	for _, table := range []Table{Metric, Imperial} {
		for _, band := range table.Bands {
			prev := domain.GroupA
			for m := 1.0; m <= band.NDL+10; m++ {
				g, _ := band.PressureGroup(m)
				assert.GreaterOrEqual(t, g, prev, "%s band %v at %v min", table.Units, band.MaxDepth, m)
				prev = g
			}
		}
	}
}

func TestImperial_MatchesSimplifiedTable(t *testing.T) {
	band, out := Imperial.FindBand(45)
	assert.False(t, out)
	assert.Equal(t, 50.0, band.MaxDepth)
	assert.Equal(t, 80.0, band.NDL)

	g, _ := band.PressureGroup(22)
	assert.Equal(t, domain.PressureGroup('D'), g)

	_, out = Imperial.FindBand(140)
	assert.True(t, out)
}

func TestForUnits(t *testing.T) {
	assert.Equal(t, domain.UnitsImperial, ForUnits(domain.UnitsImperial).Units)
	assert.Equal(t, domain.UnitsMetric, ForUnits(domain.UnitsMetric).Units)
	assert.Equal(t, domain.UnitsMetric, ForUnits("").Units)
}
