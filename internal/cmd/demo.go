package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/stepview/internal/logging"
	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/tui/models"
	"github.com/Dallionking/stepview/internal/tui/views"
)

var demoPage int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive demo",
	Long: `Browse five example step views:

  1. Basic horizontal   -- solid connectors
  2. Vertical (reverse) -- first step at the bottom
  3. Vertical (forward) -- first step at the top
  4. State changes      -- move the current step and toggle states
  5. Custom             -- custom icons, colours and sizes

Use --page to open a specific page (1-5).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if demoPage < 0 || demoPage > 5 {
			return fmt.Errorf("page must be between 1 and 5 (got %d)", demoPage)
		}

		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// --page is 1-indexed for the user, but the model is 0-indexed.
		start := 0
		if demoPage > 0 {
			start = demoPage - 1
		}

		notesStyle := "auto"
		if noColor {
			notesStyle = "notty"
		}

		return views.RunDemo(models.DemoOptions{
			StartPage:  start,
			Logger:     logging.Get(cmd),
			NotesStyle: notesStyle,
			Density:    stepview.Density{Cols: cfg.Density.Cols, Rows: cfg.Density.Rows},
		})
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoPage, "page", 0, "open a specific page (1-5)")
	rootCmd.AddCommand(demoCmd)
}
