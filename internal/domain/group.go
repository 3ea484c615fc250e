package domain

import "strings"

// PressureGroup is a residual-nitrogen letter. A is the least loaded.
type PressureGroup byte

const (
	GroupA PressureGroup = 'A'
	GroupF PressureGroup = 'F'
	GroupL PressureGroup = 'L'
	GroupO PressureGroup = 'O'
)

// ParsePressureGroup accepts a single letter A..O, case-insensitive.
func ParsePressureGroup(s string) (PressureGroup, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, false
	}
	g := PressureGroup(strings.ToUpper(s)[0])
	if !g.Valid() {
		return 0, false
	}
	return g, true
}

func (g PressureGroup) Valid() bool {
	return g >= GroupA && g <= GroupO
}

// Lower returns the next less loaded group. A stays at A.
func (g PressureGroup) Lower() PressureGroup {
	if g <= GroupA {
		return GroupA
	}
	return g - 1
}

func (g PressureGroup) String() string {
	if g == 0 {
		return ""
	}
	return string(rune(g))
}
