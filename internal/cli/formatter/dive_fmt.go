package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/alexanderramin/fathom/internal/domain"
)

// FormatRecreational renders a table lookup result.
func FormatRecreational(resp *contract.RecreationalResponse, boxed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", LimitIndicator(resp.WithinLimits), Dim("plan "+resp.PlanID))

	rows := [][]string{
		{"Depth", FormatDepth(resp.Depth, resp.Units)},
		{"Table band", FormatDepth(resp.BandDepth, resp.Units)},
		{"Bottom time", FormatMinutes(resp.BottomTime)},
		{"No-deco limit", FormatMinutes(resp.NDL)},
		{"Pressure group", GroupBadge(resp.PressureGroup)},
		{"Time remaining", remaining(resp.TimeRemaining)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-16s %s\n", Dim(r[0]), r[1])
	}

	if resp.NDL > 0 {
		fmt.Fprintf(&b, "\n  %-16s %s\n", Dim("NDL used"), RenderUsage(resp.BottomTime/resp.NDL, 24))
	}

	if adv := FormatAdvisories(resp.Advisories); adv != "" {
		b.WriteString("\n")
		b.WriteString(adv)
	}

	return Section("Dive plan", b.String(), boxed)
}

func remaining(min float64) string {
	if min < 0 {
		return StyleRed.Render(fmt.Sprintf("exceeded by %s", FormatMinutes(-min)))
	}
	return StyleGreen.Render(FormatMinutes(min))
}

// FormatSurfaceInterval renders the group after surface time.
func FormatSurfaceInterval(resp *contract.SurfaceIntervalResponse, boxed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s %s  %s\n\n",
		GroupBadge(resp.Start), Dim("→"), GroupBadge(resp.Group),
		Dim(fmt.Sprintf("after %s on the surface", FormatMinutes(resp.Minutes))))

	fmt.Fprintf(&b, "  %-18s %s\n", Dim("Policy"), string(resp.Policy))
	if resp.Start != domain.GroupA {
		fmt.Fprintf(&b, "  %-18s %s\n", Dim("Clear to group A"), FormatMinutes(resp.FullDesaturationMin))
	}

	if adv := FormatAdvisories(resp.Advisories); adv != "" {
		b.WriteString("\n")
		b.WriteString(adv)
	}

	return Section("Surface interval", b.String(), boxed)
}

// FormatAir renders a gas consumption estimate.
func FormatAir(resp *contract.AirResponse, boxed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %-16s %.0f L\n", Dim("Gas used"), resp.Liters)
	fmt.Fprintf(&b, "  %-16s %.1f bar %s\n", Dim("Pressure drop"), resp.Bars,
		Dim(fmt.Sprintf("(%g L tank, %g L/min SAC)", resp.TankLiters, resp.SACRate)))

	if resp.StartBars > 0 {
		fmt.Fprintf(&b, "  %-16s %.0f bar\n", Dim("Remaining"), resp.RemainingBars)
		fmt.Fprintf(&b, "  %-16s %s\n", Dim("Tank used"), RenderUsage(resp.Bars/resp.StartBars, 24))
	}

	if adv := FormatAdvisories(resp.Advisories); adv != "" {
		b.WriteString("\n")
		b.WriteString(adv)
	}

	return Section("Air consumption", b.String(), boxed)
}
