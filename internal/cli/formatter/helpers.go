package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Section renders title and content either boxed or as a plain header block.
func Section(title, content string, boxed bool) string {
	if boxed {
		return RenderBox(title, strings.TrimRight(content, "\n")) + "\n"
	}
	return Header(title) + "\n" + content
}

// FormatMinutes renders fractional minutes as "1h 05m", "12m" or "40s".
func FormatMinutes(min float64) string {
	if min <= 0 {
		return "0m"
	}
	if min < 1 {
		return fmt.Sprintf("%.0fs", min*60)
	}
	total := int(math.Round(min))
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatRuntime renders a cumulative runtime as minutes with one decimal.
func FormatRuntime(min float64) string {
	return fmt.Sprintf("%.1f", min)
}

// FormatDepth renders a depth with its unit suffix.
func FormatDepth(depth float64, units domain.Units) string {
	suffix := "m"
	if units == domain.UnitsImperial {
		suffix = "ft"
	}
	return fmt.Sprintf("%g %s", depth, suffix)
}

// FormatAdvisories renders one line per advisory, most severe first.
func FormatAdvisories(list []domain.Advisory) string {
	if len(list) == 0 {
		return ""
	}
	var b strings.Builder
	for _, sev := range []domain.Severity{domain.SeverityDanger, domain.SeverityCaution, domain.SeverityInfo} {
		for _, a := range list {
			if a.Severity != sev {
				continue
			}
			fmt.Fprintf(&b, "  %s  %s\n", SeverityIndicator(a.Severity), a.Message)
		}
	}
	return b.String()
}
