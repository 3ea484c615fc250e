// Package tables holds the static recreational lookup tables: no-decompression
// limits with pressure-group thresholds per depth band, and surface-interval
// credit. Tables are package-level values built once and never mutated.
package tables

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/domain"
)

// GroupThreshold maps a cumulative bottom time (minutes) to a pressure group.
type GroupThreshold struct {
	Minutes float64
	Group   domain.PressureGroup
}

// DepthBand is one table row, keyed by its maximum depth.
type DepthBand struct {
	MaxDepth   float64
	NDL        float64
	Thresholds []GroupThreshold
}

// PressureGroup returns the group for the first threshold not below
// bottomTime. Past the last threshold the most loaded group is returned and
// overLimit is set.
func (b DepthBand) PressureGroup(bottomTime float64) (group domain.PressureGroup, overLimit bool) {
	for _, t := range b.Thresholds {
		if bottomTime <= t.Minutes {
			return t.Group, false
		}
	}
	return b.Thresholds[len(b.Thresholds)-1].Group, true
}

// Table is an ordered set of depth bands, shallowest first.
type Table struct {
	Units domain.Units
	Bands []DepthBand
}

// FindBand returns the shallowest band at least as deep as depth, rounding
// up for conservatism. A depth beyond the deepest band returns that band with
// outOfTable set.
func (t Table) FindBand(depth float64) (band DepthBand, outOfTable bool) {
	for _, b := range t.Bands {
		if depth <= b.MaxDepth {
			return b, false
		}
	}
	return t.Bands[len(t.Bands)-1], true
}

// Deepest returns the deepest tabulated depth.
func (t Table) Deepest() float64 {
	return t.Bands[len(t.Bands)-1].MaxDepth
}

// Validate checks the row invariants: bands strictly deepening, thresholds
// strictly increasing and ending at the NDL, groups never decreasing.
func (t Table) Validate() error {
	if len(t.Bands) == 0 {
		return fmt.Errorf("%s table: no depth bands", t.Units)
	}
	for i, b := range t.Bands {
		if i > 0 && b.MaxDepth <= t.Bands[i-1].MaxDepth {
			return fmt.Errorf("%s table: band %v not deeper than %v", t.Units, b.MaxDepth, t.Bands[i-1].MaxDepth)
		}
		if len(b.Thresholds) == 0 {
			return fmt.Errorf("%s table: band %v has no thresholds", t.Units, b.MaxDepth)
		}
		for j, th := range b.Thresholds {
			if !th.Group.Valid() {
				return fmt.Errorf("%s table: band %v: invalid group %q", t.Units, b.MaxDepth, th.Group)
			}
			if j == 0 {
				continue
			}
			prev := b.Thresholds[j-1]
			if th.Minutes <= prev.Minutes {
				return fmt.Errorf("%s table: band %v: threshold %v not increasing", t.Units, b.MaxDepth, th.Minutes)
			}
			if th.Group < prev.Group {
				return fmt.Errorf("%s table: band %v: group %s after %s", t.Units, b.MaxDepth, th.Group, prev.Group)
			}
		}
		if last := b.Thresholds[len(b.Thresholds)-1]; last.Minutes != b.NDL {
			return fmt.Errorf("%s table: band %v: final threshold %v != NDL %v", t.Units, b.MaxDepth, last.Minutes, b.NDL)
		}
	}
	return nil
}

// ForUnits returns the table for the given unit system, defaulting to Metric.
func ForUnits(u domain.Units) Table {
	if u == domain.UnitsImperial {
		return Imperial
	}
	return Metric
}

// row builds a band from alternating minute/group pairs.
func row(maxDepth, ndl float64, pairs ...any) DepthBand {
	th := make([]GroupThreshold, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		th = append(th, GroupThreshold{
			Minutes: float64(pairs[i].(int)),
			Group:   domain.PressureGroup(pairs[i+1].(rune)),
		})
	}
	return DepthBand{MaxDepth: maxDepth, NDL: ndl, Thresholds: th}
}

// Metric is the recreational table in metres, groups A..O.
var Metric = Table{
	Units: domain.UnitsMetric,
	Bands: []DepthBand{
		row(10, 219, 12, 'A', 20, 'B', 26, 'C', 30, 'D', 34, 'E', 37, 'F', 41, 'G', 45, 'H', 50, 'I', 54, 'J', 59, 'K', 64, 'L', 80, 'M', 120, 'N', 219, 'O'),
		row(12, 147, 9, 'A', 17, 'B', 23, 'C', 26, 'D', 29, 'E', 32, 'F', 35, 'G', 38, 'H', 42, 'I', 45, 'J', 49, 'K', 53, 'L', 70, 'M', 100, 'N', 147, 'O'),
		row(14, 98, 8, 'A', 15, 'B', 19, 'C', 22, 'D', 24, 'E', 27, 'F', 29, 'G', 32, 'H', 35, 'I', 37, 'J', 40, 'K', 43, 'L', 55, 'M', 75, 'N', 98, 'O'),
		row(16, 72, 7, 'A', 13, 'B', 17, 'C', 19, 'D', 21, 'E', 23, 'F', 25, 'G', 27, 'H', 29, 'I', 32, 'J', 34, 'K', 37, 'L', 45, 'M', 57, 'N', 72, 'O'),
		row(18, 56, 6, 'A', 11, 'B', 15, 'C', 16, 'D', 18, 'E', 20, 'F', 22, 'G', 24, 'H', 26, 'I', 28, 'J', 30, 'K', 35, 'L', 40, 'M', 47, 'N', 56, 'O'),
		row(20, 45, 6, 'A', 10, 'B', 13, 'C', 15, 'D', 16, 'E', 18, 'F', 20, 'G', 21, 'H', 23, 'I', 25, 'J', 27, 'K', 31, 'L', 35, 'M', 40, 'N', 45, 'O'),
		row(22, 37, 5, 'A', 9, 'B', 12, 'C', 13, 'D', 15, 'E', 16, 'F', 18, 'G', 19, 'H', 21, 'I', 22, 'J', 24, 'K', 27, 'L', 30, 'M', 34, 'N', 37, 'O'),
		row(25, 29, 4, 'A', 8, 'B', 10, 'C', 11, 'D', 13, 'E', 14, 'F', 15, 'G', 17, 'H', 18, 'I', 19, 'J', 21, 'K', 23, 'L', 25, 'M', 27, 'N', 29, 'O'),
		row(30, 20, 3, 'A', 6, 'B', 8, 'C', 9, 'D', 10, 'E', 11, 'F', 12, 'G', 13, 'H', 14, 'I', 15, 'J', 16, 'K', 17, 'L', 18, 'M', 19, 'N', 20, 'O'),
		row(35, 14, 3, 'A', 5, 'B', 7, 'C', 8, 'D', 9, 'E', 10, 'F', 11, 'G', 12, 'H', 13, 'I', 14, 'J'),
		row(40, 9, 5, 'E', 6, 'F', 7, 'G', 8, 'H', 9, 'I'),
	},
}

// Imperial is the simplified table in feet, groups A..L.
var Imperial = Table{
	Units: domain.UnitsImperial,
	Bands: []DepthBand{
		row(35, 205, 10, 'A', 20, 'B', 30, 'B', 40, 'C', 50, 'C', 60, 'D', 70, 'D', 80, 'E', 90, 'E', 100, 'F', 110, 'F', 120, 'G', 130, 'G', 140, 'H', 150, 'H', 160, 'I', 170, 'I', 180, 'J', 190, 'J', 200, 'K', 205, 'L'),
		row(40, 140, 10, 'A', 20, 'B', 25, 'C', 30, 'C', 40, 'D', 50, 'E', 60, 'F', 70, 'G', 80, 'H', 90, 'I', 100, 'J', 110, 'K', 120, 'L', 130, 'L', 140, 'L'),
		row(50, 80, 10, 'B', 20, 'C', 25, 'D', 30, 'D', 40, 'E', 50, 'F', 60, 'G', 70, 'H', 80, 'I'),
		row(60, 55, 10, 'B', 15, 'C', 20, 'D', 25, 'D', 30, 'E', 40, 'F', 50, 'G', 55, 'H'),
		row(70, 40, 10, 'C', 15, 'D', 20, 'E', 25, 'E', 30, 'F', 40, 'G'),
		row(80, 30, 10, 'D', 15, 'E', 20, 'F', 25, 'F', 30, 'G'),
		row(90, 25, 10, 'E', 15, 'F', 20, 'G', 25, 'H'),
		row(100, 20, 10, 'F', 15, 'G', 20, 'H'),
		row(110, 16, 10, 'G', 15, 'H', 16, 'I'),
		row(120, 13, 10, 'H', 13, 'I'),
		row(130, 10, 10, 'I'),
	},
}
