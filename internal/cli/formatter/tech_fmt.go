package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/alexanderramin/fathom/internal/domain"
)

// FormatTechnical renders a decompression schedule. Unresolved plans are
// still printed so the diver can see where the ascent stalled.
func FormatTechnical(resp *contract.TechnicalResponse, boxed bool) string {
	var b strings.Builder

	status := StyleGreen.Render("● RESOLVED")
	if !resp.Resolved {
		status = StyleRed.Render("▲ UNRESOLVED")
	}
	fmt.Fprintf(&b, "%s  %s\n\n", status, Dim("plan "+resp.PlanID))

	fmt.Fprintf(&b, "  %-14s %s for %s on %s\n", Dim("Dive"),
		FormatDepth(resp.MaxDepth, domain.UnitsMetric), FormatMinutes(resp.BottomTime), resp.BottomGas.ID)
	fmt.Fprintf(&b, "  %-14s GF %g/%g, ascent %g m/min, deco gas %s\n", Dim("Settings"),
		resp.Settings.GFLow, resp.Settings.GFHigh, resp.Settings.AscentRate, resp.DecoGases)
	fmt.Fprintf(&b, "  %-14s %s\n", Dim("First stop"), firstStop(resp.FirstStop))
	fmt.Fprintf(&b, "  %-14s %s\n", Dim("Deco time"), FormatMinutes(resp.TotalDecoTime))
	fmt.Fprintf(&b, "  %-14s %s\n\n", Dim("Runtime"), FormatMinutes(resp.TotalRuntime))

	b.WriteString(FormatProfile(resp.Profile))

	if adv := FormatAdvisories(resp.Warnings); adv != "" {
		b.WriteString("\n")
		b.WriteString(adv)
	}
	if !resp.Resolved && resp.FailureReason != "" {
		fmt.Fprintf(&b, "\n  %s  %s\n", SeverityIndicator(domain.SeverityDanger), resp.FailureReason)
	}

	return Section("Decompression plan", b.String(), boxed)
}

func firstStop(depth float64) string {
	if depth <= 0 {
		return StyleGreen.Render("none, direct ascent")
	}
	return FormatDepth(depth, domain.UnitsMetric)
}

// FormatProfile renders the segment list as a table.
func FormatProfile(profile []domain.Segment) string {
	if len(profile) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(profile))
	for _, s := range profile {
		rows = append(rows, []string{
			PhaseLabel(s.Phase),
			strconv.FormatFloat(s.Depth, 'g', -1, 64),
			FormatRuntime(s.Duration),
			FormatRuntime(s.Runtime),
			s.Gas,
		})
	}
	return RenderTable(
		[]string{"PHASE", "DEPTH", "MIN", "RUNTIME", "GAS"},
		rows,
		AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft,
	)
}
