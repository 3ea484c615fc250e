package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/alexanderramin/fathom/internal/tables"
)

// FormatGases renders the gas catalog.
func FormatGases(gases []domain.GasMix) string {
	rows := make([][]string, 0, len(gases))
	for _, g := range gases {
		rows = append(rows, []string{
			g.ID,
			strconv.FormatFloat(g.O2Pct, 'g', -1, 64),
			strconv.FormatFloat(g.HePct, 'g', -1, 64),
			strconv.FormatFloat(g.N2Pct(), 'g', -1, 64),
			strconv.FormatFloat(g.MOD, 'g', -1, 64) + " m",
		})
	}
	return Header("Gas catalog") + "\n" + RenderTable(
		[]string{"GAS", "O2 %", "HE %", "N2 %", "MOD"},
		rows,
		AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight,
	)
}

// FormatNDLTable renders each depth band with its limit and the bottom
// time thresholds for each pressure group.
func FormatNDLTable(t tables.Table) string {
	unit := "m"
	if t.Units == domain.UnitsImperial {
		unit = "ft"
	}
	rows := make([][]string, 0, len(t.Bands))
	for _, band := range t.Bands {
		steps := make([]string, 0, len(band.Thresholds))
		for _, th := range band.Thresholds {
			steps = append(steps, th.Group.String()+strconv.FormatFloat(th.Minutes, 'g', -1, 64))
		}
		rows = append(rows, []string{
			strconv.FormatFloat(band.MaxDepth, 'g', -1, 64) + " " + unit,
			strconv.FormatFloat(band.NDL, 'g', -1, 64),
			Dim(strings.Join(steps, " ")),
		})
	}
	return Header("No-decompression limits ("+string(t.Units)+")") + "\n" + RenderTable(
		[]string{"DEPTH", "NDL", "GROUPS (group+minutes)"},
		rows,
		AlignRight, AlignRight, AlignLeft,
	)
}
