package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Dallionking/stepview/internal/config"
	"github.com/Dallionking/stepview/internal/logging"
)

var (
	cfgFile  string
	logLevel string
	verbose  bool
	noColor  bool
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "stepview",
	Short: "Render step progress indicators in the terminal",
	Long: `stepview draws a row or column of step icons joined by connectors,
with a label for each step, styled by completion state.

Steps and styling come from a stepview.yaml found in the working directory
or its parents, from --config, from STEPVIEW_* environment variables, and
from command-line flags, in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		level := logLevel
		if verbose {
			level = "debug"
		}
		return logging.Setup(cmd, logging.Options{Level: level, NoColor: noColor, Quiet: quiet})
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: stepview.yaml in . or a parent directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all log output")
}

// loadConfig reads the config selected by --config and logs where it came
// from.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	logger := logging.Get(cmd)
	cfg, file, err := config.Load(cfgFile)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	if file == "" {
		logger.Debug("no config file, using defaults")
	} else {
		logger.Debug("config loaded", "file", file)
	}
	return cfg, file, nil
}
