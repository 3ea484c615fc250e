package cli

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/cli/formatter"
	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/spf13/cobra"
)

func newAirCmd(app *App, boxed func() bool) *cobra.Command {
	req := contract.NewAirRequest()

	cmd := &cobra.Command{
		Use:     "air",
		Short:   "Estimate gas consumption at constant depth",
		Example: `  fathom air --depth 20 --time 30 --tank 15 --sac 18`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.ComputeAir(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAir(resp, boxed()))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&req.Depth, "depth", "d", 0, "Depth in metres")
	cmd.Flags().Float64VarP(&req.Minutes, "time", "t", 0, "Minutes at depth")
	cmd.Flags().Float64Var(&req.TankLiters, "tank", 0, "Tank water volume in litres; default from FATHOM_TANK_LITERS")
	cmd.Flags().Float64Var(&req.SACRate, "sac", 0, "Surface air consumption in litres/min; default from FATHOM_SAC_RATE")
	cmd.Flags().Float64Var(&req.StartBars, "start", 0, "Starting tank pressure in bar")
	cmd.Flags().Float64Var(&req.ReserveBars, "reserve", 0, "Reserve pressure in bar")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
