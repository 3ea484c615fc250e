package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for an advisory severity.
func SeverityColor(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityDanger:
		return StyleRed
	case domain.SeverityCaution:
		return StyleYellow
	case domain.SeverityInfo:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored marker such as "⛔ DANGER".
func SeverityIndicator(sev domain.Severity) string {
	switch sev {
	case domain.SeverityDanger:
		return StyleRed.Render("⛔ DANGER")
	case domain.SeverityCaution:
		return StyleYellow.Render("⚠ CAUTION")
	case domain.SeverityInfo:
		return StyleGreen.Render("✓ INFO")
	default:
		return StyleDim.Render("● NOTE")
	}
}

// LimitIndicator renders whether a plan stays inside its limits.
func LimitIndicator(within bool) string {
	if within {
		return StyleGreen.Render("● WITHIN LIMITS")
	}
	return StyleRed.Render("▲ EXCEEDS LIMITS")
}

// PhaseLabel returns a colored label for a profile phase.
func PhaseLabel(p domain.Phase) string {
	switch p {
	case domain.PhaseBottom:
		return StyleBlue.Render("Bottom")
	case domain.PhaseAscent:
		return StyleDim.Render("Ascent")
	case domain.PhaseGasSwitch:
		return StylePurple.Render("Gas switch")
	case domain.PhaseDecoStop:
		return StyleYellow.Render("Deco stop")
	default:
		return StyleDim.Render(string(p))
	}
}

// GroupBadge renders a pressure group, coloured by load.
func GroupBadge(g domain.PressureGroup) string {
	switch {
	case g >= domain.GroupL:
		return StyleRed.Render(g.String())
	case g >= domain.GroupF:
		return StyleYellow.Render(g.String())
	default:
		return StyleGreen.Render(g.String())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
