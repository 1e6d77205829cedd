package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/alexanderramin/quoteforge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Quotes    service.QuoteService
	Projects  service.ProjectService
	Config    service.ConfigService
	Dashboard service.DashboardService

	// Serve runs the HTTP API on addr until ctx is done. Nil disables
	// the serve command.
	Serve func(ctx context.Context, addr string) error

	// IsInteractive is true when stdin and stdout are terminals. The
	// wizard, browse and spinner require it.
	IsInteractive bool
}

// NewRootCmd creates the top-level "quoteforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "quoteforge",
		Short:         "Project pricing and estimation for software agencies",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newEstimateCmd(app),
		newWizardCmd(app),
		newAnalyzeCmd(app),
		newFeaturesCmd(),
		newProjectCmd(app),
		newConfigCmd(app),
		newDashboardCmd(app),
		newBrowseCmd(app),
		newServeCmd(app),
	)

	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
