package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		asJSON   bool
		saveOpts saveFlags
	)

	cmd := &cobra.Command{
		Use:   "analyze DESCRIPTION...",
		Short: "Read a free-text product idea and price it",
		Example: `  quoteforge analyze "A marketplace app for local bakers with payments and reviews"
  quoteforge analyze --save --name "Bakers market" --client "Crumb Ltd" "..."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			stop := func() {}
			if app.IsInteractive && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Analyzing idea...")
			}
			idea, err := app.Quotes.AnalyzeIdea(cmd.Context(), description)
			stop()
			if err != nil {
				return err
			}

			if !saveOpts.save {
				if asJSON {
					return printJSON(out, idea)
				}
				fmt.Fprint(out, formatter.FormatIdeaEstimate(idea))
				return nil
			}

			req := saveOpts.request(idea.Mapping.Inputs, domain.SourceAI)
			req.Description = description
			analysis := idea.Analysis
			req.Analysis = &analysis
			p, err := app.Quotes.SaveQuote(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out, p)
			}
			fmt.Fprintln(out, formatter.FormatIdeaEstimate(idea))
			fmt.Fprintf(out, "Saved quote %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	saveOpts.register(cmd)
	return cmd
}
