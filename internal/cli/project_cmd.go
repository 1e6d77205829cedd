package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/report"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Manage saved quotes",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectStatusCmd(app),
		newProjectNotesCmd(app),
		newProjectDeleteCmd(app),
		newProjectReportCmd(app),
		newProjectExportCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var (
		f      repository.ProjectFilter
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved quotes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				if projects == nil {
					projects = []*domain.Project{}
				}
				return printJSON(out, projects)
			}
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatProjectList(projects))
			return nil
		},
	}

	fs := cmd.Flags()
	enumFlag(fs, &f.Status, domain.ProjectStatuses, "status", "status", "Only this status")
	enumFlag(fs, &f.Health, domain.HealthStatuses, "health", "health", "Only this margin health")
	fs.StringVarP(&f.Query, "query", "q", "", "Match name, client or description")
	fs.IntVarP(&f.Limit, "limit", "n", 0, "Maximum rows (0 = all)")
	fs.BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectDetail(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a quote to another status (new, in_review, approved, rejected, archived)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.UpdateStatus(cmd.Context(), args[0], domain.ProjectStatus(strings.ToLower(args[1])))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", p.Name, formatter.StatusPill(p.Status))
			return nil
		},
	}
}

func newProjectNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes ID TEXT...",
		Short: "Replace the internal notes of a quote",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := strings.Join(args[1:], " ")
			if err := app.Projects.UpdateNotes(cmd.Context(), args[0], notes); err != nil {
				return err
			}
			if notes == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Notes cleared.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Notes updated.")
			}
			return nil
		},
	}
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an archived quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), p.ID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the quote is not archived")
	return cmd
}

func newProjectReportCmd(app *App) *cobra.Command {
	var (
		internal bool
		asHTML   bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "report ID",
		Short: "Render a quote report as markdown or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			md := report.Markdown(p, app.Quotes.Narrative(cmd.Context(), p), report.Options{Internal: internal})
			body := []byte(md)
			if asHTML {
				body = report.RenderHTML(md)
			}
			return writeOutput(cmd.OutOrStdout(), outPath, body)
		},
	}

	cmd.Flags().BoolVar(&internal, "internal", false, "Include cost, margin and risk warnings")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Render HTML instead of markdown")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newProjectExportCmd(app *App) *cobra.Command {
	var (
		status  domain.ProjectStatus
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved quotes to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), repository.ProjectFilter{Status: status})
			if err != nil {
				return err
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := report.WriteWorkbook(f, projects); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d quotes to %s\n", len(projects), outPath)
			return nil
		},
	}

	enumFlag(cmd.Flags(), &status, domain.ProjectStatuses, "status", "status", "Only this status")
	cmd.Flags().StringVarP(&outPath, "out", "o", "quotes.xlsx", "Workbook path")
	return cmd
}

func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "" {
		_, err := stdout.Write(body)
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}
