package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// saveFlags are shared by every command that can store a quote.
type saveFlags struct {
	save   bool
	name   string
	client string
	email  string
	notes  string
}

func (f *saveFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.save, "save", false, "Save the quote as a project")
	cmd.Flags().StringVar(&f.name, "name", "", "Project name (required with --save)")
	cmd.Flags().StringVar(&f.client, "client", "", "Client name")
	cmd.Flags().StringVar(&f.email, "email", "", "Client email")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Internal notes")
}

func (f *saveFlags) request(in domain.PricingInputs, source domain.ProjectSource) service.QuoteRequest {
	return service.QuoteRequest{
		Name:        f.name,
		ClientName:  f.client,
		ClientEmail: f.email,
		Notes:       f.notes,
		Source:      source,
		Inputs:      in,
	}
}

func loadInputsFile(path string) (domain.PricingInputs, error) {
	var in domain.PricingInputs
	data, err := os.ReadFile(path)
	if err != nil {
		return in, err
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}

func newEstimateCmd(app *App) *cobra.Command {
	var (
		in       domain.PricingInputs
		file     string
		asJSON   bool
		saveOpts saveFlags
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price a project from flags or an inputs file",
		Example: `  quoteforge estimate --idea business-website --format website --stack react-nextjs
  quoteforge estimate --idea startup-product --feature user-auth,payments --speed faster --save --name "Acme MVP"
  quoteforge estimate --file inputs.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				fromFile, err := loadInputsFile(file)
				if err != nil {
					return err
				}
				in = mergeFlagInputs(cmd, fromFile, in)
			}
			out := cmd.OutOrStdout()

			if saveOpts.save {
				p, err := app.Quotes.SaveQuote(cmd.Context(), saveOpts.request(in, domain.SourceForm))
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(out, p)
				}
				fmt.Fprintln(out, formatter.FormatEstimate(p.Estimate, p.ConfigVersion))
				fmt.Fprintf(out, "Saved quote %s [%s]\n", p.Name, p.DisplayID())
				return nil
			}

			est, version, err := app.Quotes.Estimate(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out, map[string]any{"estimate": est, "configVersion": version})
			}
			fmt.Fprint(out, formatter.FormatEstimate(est, version))
			return nil
		},
	}

	fs := cmd.Flags()
	enumFlag(fs, &in.IdeaType, domain.IdeaTypes, "idea", "idea", "Idea type")
	enumFlag(fs, &in.ProductFormat, domain.ProductFormats, "format", "format", "Product format")
	enumFlag(fs, &in.TechStack, domain.TechStacks, "stack", "stack", "Tech stack")
	enumFlag(fs, &in.DeliverySpeed, domain.DeliverySpeeds, "speed", "speed", "Delivery speed")
	enumFlag(fs, &in.SupportDuration, domain.SupportDurations, "support", "support", "Support duration")
	enumFlag(fs, &in.ComplexityLevel, domain.ComplexityLevels, "complexity", "complexity", "Complexity level")
	fs.StringSliceVar(&in.SelectedFeatures, "feature", nil, "Feature id, repeatable or comma-separated (see 'quoteforge features')")
	fs.StringVarP(&file, "file", "f", "", "YAML file with pricing inputs; flags override it")
	fs.BoolVar(&asJSON, "json", false, "Print JSON")
	saveOpts.register(cmd)

	return cmd
}

// mergeFlagInputs applies explicitly set flags over inputs read from a file.
func mergeFlagInputs(cmd *cobra.Command, base, flags domain.PricingInputs) domain.PricingInputs {
	changed := cmd.Flags().Changed
	if changed("idea") {
		base.IdeaType = flags.IdeaType
	}
	if changed("format") {
		base.ProductFormat = flags.ProductFormat
	}
	if changed("stack") {
		base.TechStack = flags.TechStack
	}
	if changed("speed") {
		base.DeliverySpeed = flags.DeliverySpeed
	}
	if changed("support") {
		base.SupportDuration = flags.SupportDuration
	}
	if changed("complexity") {
		base.ComplexityLevel = flags.ComplexityLevel
	}
	if changed("feature") {
		base.SelectedFeatures = flags.SelectedFeatures
	}
	return base
}

func newFeaturesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the feature catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return printJSON(cmd.OutOrStdout(), pricing.FeatureCatalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFeatureCatalog(pricing.FeatureCatalog))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
