package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/quoteforge/internal/cli/formatter"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and version the pricing configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigImportCmd(app),
		newConfigHistoryCmd(app),
		newConfigActivateCmd(app),
		newConfigSimulateCmd(app),
	)

	return cmd
}

// loadConfigFile reads a partial pricing configuration. Omitted sections
// keep their defaults when merged.
func loadConfigFile(path string) (pricing.Configuration, error) {
	var c pricing.Configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func newConfigShowCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active pricing configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := app.Config.Active(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), ac)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActiveConfig(ac))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newConfigImportCmd(app *App) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Save a YAML override as a new active configuration version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := loadConfigFile(args[0])
			if err != nil {
				return err
			}
			v, err := app.Config.Save(cmd.Context(), label, override)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved pricing config v%d and made it active.\n", v.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Short description of the change")
	return cmd
}

func newConfigHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List saved configuration versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := app.Config.History(cmd.Context())
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved versions. The built-in configuration is active.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfigHistory(versions))
			return nil
		},
	}
}

func newConfigActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate VERSION",
		Short: "Switch to a saved version (0 restores the built-in configuration)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil || version < 0 {
				return fmt.Errorf("invalid version %q", args[0])
			}
			if err := app.Config.Activate(cmd.Context(), version); err != nil {
				return err
			}
			if version == pricing.DefaultVersion {
				fmt.Fprintln(cmd.OutOrStdout(), "Built-in pricing configuration is active.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pricing config v%d is active.\n", version)
			}
			return nil
		},
	}
}

func newConfigSimulateCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Re-price open quotes under a candidate override without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := loadConfigFile(args[0])
			if err != nil {
				return err
			}
			rep, err := app.Config.Simulate(cmd.Context(), override)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSimulation(rep))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
