package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned by commands that need a terminal.
var errNotInteractive = errors.New("this command needs an interactive terminal")

// quoteforgeHuhTheme returns a huh theme using the Gruvbox palette.
func quoteforgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func enumOptions[T ~string](values []T) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(formatter.Humanize(string(v)), v))
	}
	return opts
}

func featureOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(pricing.FeatureCatalog))
	for _, f := range pricing.FeatureCatalog {
		label := fmt.Sprintf("%-26s %-12s %s", f.Name, string(f.Category), formatter.Money(f.Cost))
		opts = append(opts, huh.NewOption(label, f.ID))
	}
	return opts
}

// wizardAnswers collects everything the quote form asks for.
type wizardAnswers struct {
	inputs domain.PricingInputs
	save   bool
	name   string
	client string
	email  string
}

// newQuoteForm builds the interactive quote form writing into a.
func newQuoteForm(a *wizardAnswers) *huh.Form {
	in := &a.inputs
	if in.DeliverySpeed == "" {
		in.DeliverySpeed = domain.SpeedStandard
	}
	if in.SupportDuration == "" {
		in.SupportDuration = domain.SupportNone
	}

	complexityOpts := append(
		[]huh.Option[domain.ComplexityLevel]{huh.NewOption("From feature count", domain.ComplexityNone)},
		enumOptions(domain.ComplexityLevels)...,
	)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.IdeaType]().
				Title("What are we building?").
				Options(enumOptions(domain.IdeaTypes)...).
				Value(&in.IdeaType),
			huh.NewSelect[domain.ProductFormat]().
				Title("Format").
				Options(enumOptions(domain.ProductFormats)...).
				Value(&in.ProductFormat),
			huh.NewSelect[domain.TechStack]().
				Title("Tech stack").
				Options(enumOptions(domain.TechStacks)...).
				Value(&in.TechStack),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Description("space to toggle, enter to continue").
				Options(featureOptions()...).
				Height(14).
				Value(&in.SelectedFeatures),
		),
		huh.NewGroup(
			huh.NewSelect[domain.DeliverySpeed]().
				Title("Delivery speed").
				Options(enumOptions(domain.DeliverySpeeds)...).
				Value(&in.DeliverySpeed),
			huh.NewSelect[domain.SupportDuration]().
				Title("Support after launch").
				Options(enumOptions(domain.SupportDurations)...).
				Value(&in.SupportDuration),
			huh.NewSelect[domain.ComplexityLevel]().
				Title("Complexity").
				Options(complexityOpts...).
				Value(&in.ComplexityLevel),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this quote?").
				Value(&a.save),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&a.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Client name").Value(&a.client),
			huh.NewInput().Title("Client email").Value(&a.email),
		).WithHideFunc(func() bool { return !a.save }),
	).WithTheme(quoteforgeHuhTheme()).WithShowHelp(true)
}

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a quote step by step",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return errNotInteractive
			}
			var a wizardAnswers
			if err := newQuoteForm(&a).RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			return finishWizard(cmd, app, a)
		},
	}
}

// finishWizard prices, and optionally saves, the answers of a completed form.
func finishWizard(cmd *cobra.Command, app *App, a wizardAnswers) error {
	out := cmd.OutOrStdout()
	if !a.save {
		est, version, err := app.Quotes.Estimate(cmd.Context(), a.inputs)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatEstimate(est, version))
		return nil
	}

	opts := saveFlags{name: a.name, client: a.client, email: a.email}
	p, err := app.Quotes.SaveQuote(cmd.Context(), opts.request(a.inputs, domain.SourceForm))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatEstimate(p.Estimate, p.ConfigVersion))
	fmt.Fprintf(out, "Saved quote %s [%s]\n", p.Name, p.DisplayID())
	return nil
}
