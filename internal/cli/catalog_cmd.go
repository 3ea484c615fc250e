package cli

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/cli/formatter"
	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/spf13/cobra"
)

func newGasesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "gases",
		Short: "List the gas catalog with maximum operating depths",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGases(app.Planner.ListGases(cmd.Context())))
			return nil
		},
	}
}

func newTablesCmd(app *App) *cobra.Command {
	var units domain.Units

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the no-decompression limit table",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNDLTable(app.Planner.NDLTable(cmd.Context(), units)))
			return nil
		},
	}

	cmd.Flags().Var(unitsFlag(&units), "units", "Table units (metric|imperial); default from FATHOM_UNITS")

	return cmd
}
