package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fathom/internal/cli/formatter"
	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/spf13/cobra"
)

func newTechCmd(app *App, boxed func() bool) *cobra.Command {
	req := contract.NewTechnicalRequest()

	cmd := &cobra.Command{
		Use:   "tech",
		Short: "Schedule a decompression ascent with the Buhlmann ZHL-16C model",
		Example: `  fathom tech --depth 40 --time 30 --deco-gas ean50+oxygen
  fathom tech --depth 30 --time 25 --gf-low 30 --gf-high 70`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.PlanTechnical(cmd.Context(), req)
			if resp != nil && (err == nil || errors.Is(err, domain.ErrUnresolvableCeiling)) {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTechnical(resp, boxed()))
			}
			return err
		},
	}

	cmd.Flags().Float64VarP(&req.MaxDepth, "depth", "d", 0, "Maximum depth in metres")
	cmd.Flags().Float64VarP(&req.BottomTime, "time", "t", 0, "Bottom time in minutes")
	cmd.Flags().Var(&gasValue{target: &req.BottomGas}, "gas", "Bottom gas id (see 'fathom gases')")
	cmd.Flags().Var(decoGasFlag(&req.DecoGases), "deco-gas", "Deco gases (none|ean50|oxygen|ean50+oxygen)")
	cmd.Flags().Float64Var(&req.GFLow, "gf-low", 0, "Gradient factor low in percent; default from FATHOM_GF_LOW")
	cmd.Flags().Float64Var(&req.GFHigh, "gf-high", 0, "Gradient factor high in percent; default from FATHOM_GF_HIGH")
	cmd.Flags().Float64Var(&req.AscentRate, "ascent-rate", 0, "Ascent rate in m/min; default from FATHOM_ASCENT_RATE")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
