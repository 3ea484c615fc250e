package cli

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/cli/formatter"
	"github.com/alexanderramin/fathom/internal/contract"
	"github.com/spf13/cobra"
)

func newSurfaceCmd(app *App, boxed func() bool) *cobra.Command {
	req := contract.NewSurfaceIntervalRequest()

	cmd := &cobra.Command{
		Use:     "surface",
		Short:   "Credit surface interval time to a pressure group",
		Example: `  fathom surface --group D --minutes 90 --policy stepwise`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.PlanSurfaceInterval(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSurfaceInterval(resp, boxed()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Group, "group", "g", "", "Pressure group at the start of the interval (A-O)")
	cmd.Flags().Float64VarP(&req.Minutes, "minutes", "m", 0, "Surface interval in minutes")
	cmd.Flags().Var(surfacePolicyFlag(&req.Policy), "policy", "Credit policy (threshold|stepwise); default from FATHOM_SURFACE_POLICY")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}
