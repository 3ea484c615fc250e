package cli

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/cli/formatter"
	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/spf13/cobra"
)

func newDiveCmd(app *App, boxed func() bool) *cobra.Command {
	req := contract.NewRecreationalRequest()

	cmd := &cobra.Command{
		Use:   "dive",
		Short: "Look up the no-decompression limit and pressure group for a dive",
		Example: `  fathom dive --depth 18 --time 40
  fathom dive --depth 60 --time 30 --units imperial`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.PlanRecreational(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecreational(resp, boxed()))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&req.Depth, "depth", "d", 0, "Maximum depth")
	cmd.Flags().Float64VarP(&req.BottomTime, "time", "t", 0, "Bottom time in minutes")
	cmd.Flags().Var(unitsFlag(&req.Units), "units", "Table units (metric|imperial); default from FATHOM_UNITS")
	_ = cmd.MarkFlagRequired("depth")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
