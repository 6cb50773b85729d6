package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/stepview/internal/health"
)

var doctorCategory string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the terminal and configuration",
	Long: `Run diagnostic checks that explain why a step view might look wrong.

Checks are grouped into categories:
  terminal  - tty, width, colour support, icon glyph widths
  config    - config file discovery, validation, steps

Use --category to run only one group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := health.NewChecker(health.Options{ConfigFile: cfgFile})
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		var report *health.Report
		if doctorCategory != "" {
			report = checker.RunCategory(ctx, doctorCategory)
		} else {
			report = checker.RunAll(ctx)
		}
		if report.Total == 0 {
			return fmt.Errorf("unknown category %q (use terminal or config)", doctorCategory)
		}

		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
		if !report.Healthy {
			return errors.New("doctor found failing checks")
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorCategory, "category", "", "run only one category: terminal or config")
	rootCmd.AddCommand(doctorCmd)
}
