package cli

import (
	"fmt"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize the quote pipeline and margin health",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Dashboard.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), s)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(s))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
