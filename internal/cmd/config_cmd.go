package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Dallionking/stepview/internal/config"
	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and manage stepview configuration.

When run without subcommands, displays the current configuration summary.

Subcommands:
  show       Print the effective configuration
  validate   Check the configuration for errors
  init       Write a starter config file
  presets    List available style presets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, file, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		source := file
		if source == "" {
			source = "(defaults)"
		}
		preset := cfg.Preset
		if preset == "" {
			preset = "-"
		}

		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Label.Render("FILE")+"          "+styles.Value.Render(source))
		fmt.Fprintln(out, styles.Label.Render("ORIENTATION")+"   "+styles.Value.Render(cfg.Orientation))
		fmt.Fprintln(out, styles.Label.Render("PRESET")+"        "+styles.Value.Render(preset))
		fmt.Fprintln(out, styles.Label.Render("TEXT SIZE")+"     "+styles.Value.Render(fmt.Sprintf("%dsp", cfg.TextSize)))
		fmt.Fprintln(out, styles.Label.Render("RADIUS")+"        "+styles.Value.Render(fmt.Sprintf("%gdp", cfg.CircleRadius)))
		fmt.Fprintln(out, styles.Label.Render("LINE LENGTH")+"   "+styles.Value.Render(fmt.Sprintf("%gdp", cfg.LineLength)))
		fmt.Fprintln(out, styles.Label.Render("DENSITY")+"       "+styles.Value.Render(fmt.Sprintf("%g cols/dp, %g rows/dp", cfg.Density.Cols, cfg.Density.Rows)))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Divider(50))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Subtitle.Render("Steps"))
		if len(cfg.Steps) == 0 {
			fmt.Fprintln(out, styles.Dim("  none configured"))
		}
		for i, s := range cfg.Steps {
			fmt.Fprintf(out, "  %s %s  %s\n",
				styles.Dim(fmt.Sprintf("%2d.", i+1)),
				styles.Bold(styles.TruncateWithEllipsis(s.Name, 40)),
				styles.StateBadge(s.State.String()),
			)
		}
		return nil
	},
}

// --- config show ---

var configShowJSON bool

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, file, environment and preset are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ext := ".yaml"
		if configShowJSON {
			ext = ".json"
		}
		data, err := config.Marshal(cfg, ext)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// --- config validate ---

// ErrInvalidConfig is returned by config validate when problems were found.
var ErrInvalidConfig = errors.New("configuration is invalid")

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, file, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Fprintln(out, styles.Green("✓ configuration is valid")+" "+styles.Dim(file))
			return nil
		}

		fmt.Fprintln(out, styles.Red(fmt.Sprintf("✗ %d problem(s) found", len(errs))))
		for _, e := range errs {
			fmt.Fprintf(out, "  %s %s\n", styles.Bold(e.Field), styles.Dim(e.Message))
		}
		return ErrInvalidConfig
	},
}

// --- config init ---

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long:  `Write a starter config with example steps. The default path is ./stepview.yaml; a .json path writes JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "stepview.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := starterConfig()
		if err := config.Save(path, &cfg); err != nil {
			return err
		}

		abs, _ := filepath.Abs(path)
		fmt.Fprintln(cmd.OutOrStdout(), styles.Green("Wrote")+" "+styles.Value.Render(abs))
		return nil
	},
}

func starterConfig() config.Config {
	cfg := config.Default()
	cfg.Preset = "gotham"
	cfg.Steps = []config.StepConfig{
		{Name: "Order", State: stepview.Completed},
		{Name: "Pay", State: stepview.Current},
		{Name: "Ship", State: stepview.NotCompleted},
		{Name: "Deliver", State: stepview.NotCompleted},
	}
	return cfg
}

// --- config presets ---

var configPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available style presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.Title.Render("Presets"))
		fmt.Fprintln(out)
		for _, name := range config.ListPresets() {
			p, err := config.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s  %s %s %s\n",
				styles.Bold(fmt.Sprintf("%-8s", name)),
				swatch(p.Icons.Completed, "●", p.Colors.CompletedLine),
				swatch(p.Icons.Current, "◉", p.Colors.CurrentText),
				swatch(p.Icons.NotCompleted, "○", p.Colors.NotCompletedLine),
			)
		}
		return nil
	},
}

// swatch previews an icon in its colour, falling back to a default glyph and
// the given colour.
func swatch(icon config.IconConfig, glyph, color string) string {
	if icon.Glyph != "" {
		glyph = icon.Glyph
	}
	if icon.Color != "" {
		color = icon.Color
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(glyph)
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "print JSON instead of YAML")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPresetsCmd)
	rootCmd.AddCommand(configCmd)
}
