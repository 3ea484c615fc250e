package cli

import (
	"github.com/alexanderramin/fathom/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Planner service.PlannerService
	// IsInteractive reports whether stdout is a terminal. Nil means plain output.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fathom" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:           "fathom",
		Short:         "Dive planner for no-decompression and decompression dives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&plain, "plain", false, "Disable boxed output even on a terminal")

	boxed := func() bool {
		return !plain && app.IsInteractive != nil && app.IsInteractive()
	}

	root.AddCommand(
		newDiveCmd(app, boxed),
		newSurfaceCmd(app, boxed),
		newAirCmd(app, boxed),
		newTechCmd(app, boxed),
		newGasesCmd(app),
		newTablesCmd(app),
	)

	return root
}
