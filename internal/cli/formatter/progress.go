package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUsage renders a consumption bar like [████░░░░] 45%. The fraction
// is of a limit, so the bar turns yellow at 66% and red at 90%. Values
// above 1 are shown in the label but clamp the bar.
func RenderUsage(pct float64, width int) string {
	label := pct
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case label >= 0.9:
		style = StyleRed
	case label >= 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), label*100)
}
