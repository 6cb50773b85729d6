package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dallionking/stepview/internal/config"
	"github.com/Dallionking/stepview/internal/logging"
	"github.com/Dallionking/stepview/internal/stepview"
	"github.com/Dallionking/stepview/internal/watch"
)

// ErrNoSteps is returned when there is nothing to render.
var ErrNoSteps = errors.New("no steps configured (use --step or a config file)")

const fallbackWidth = 80

var (
	renderOrientation string
	renderWidth       int
	renderSteps       []string
	renderReverse     bool
	renderSolid       bool
	renderPreset      string
	renderWatch       bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the configured step view to stdout",
	Long: `Render a step view once and print it.

Steps come from the config file or from repeated --step flags in the form
name or name:state, where state is completed, current or not_completed.

Examples:
  stepview render --step Order:completed --step Pay:current --step Ship
  stepview render --orientation vertical --reverse=false
  stepview render --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Get(cmd)
		out := cmd.OutOrStdout()

		cfg, file, err := renderConfig(cmd)
		if err != nil {
			return err
		}
		if err := renderTo(out, cfg, logger); err != nil {
			return err
		}

		if !renderWatch {
			return nil
		}
		if file == "" {
			return errors.New("--watch needs a config file")
		}
		return watchAndRender(cmd, out, file, logger)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOrientation, "orientation", "", "horizontal or vertical")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "width in cells (default: terminal width)")
	renderCmd.Flags().StringArrayVar(&renderSteps, "step", nil, "step as name[:state], repeatable; replaces configured steps")
	renderCmd.Flags().BoolVar(&renderReverse, "reverse", true, "vertical only: first step at the bottom")
	renderCmd.Flags().BoolVar(&renderSolid, "solid", false, "draw not-completed connectors solid instead of dashed")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "style preset: "+strings.Join(config.ListPresets(), ", "))
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "re-render whenever the config file changes")
	rootCmd.AddCommand(renderCmd)
}

// renderFlags are the render command's overrides.
type renderFlags struct {
	Orientation    string
	Width          int
	Steps          []string
	Reverse        bool
	ReverseChanged bool
	Solid          bool
	Preset         string
}

// renderConfig loads the config and layers the command-line flags on top.
func renderConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, file, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	err = applyRenderFlags(cfg, renderFlags{
		Orientation:    renderOrientation,
		Width:          renderWidth,
		Steps:          renderSteps,
		Reverse:        renderReverse,
		ReverseChanged: cmd.Flags().Changed("reverse"),
		Solid:          renderSolid,
		Preset:         renderPreset,
	})
	if err != nil {
		return nil, "", err
	}
	return cfg, file, nil
}

func applyRenderFlags(cfg *config.Config, f renderFlags) error {
	overrides := config.Config{
		Orientation: f.Orientation,
		Width:       f.Width,
	}
	for _, s := range f.Steps {
		step, err := config.ParseStepSpec(s)
		if err != nil {
			return err
		}
		overrides.Steps = append(overrides.Steps, step)
	}
	if err := config.Override(cfg, overrides); err != nil {
		return err
	}

	// Booleans are applied only when given, so false can override true.
	if f.ReverseChanged {
		cfg.Reverse = f.Reverse
	}
	if f.Solid {
		cfg.DashedLine = false
	}
	if f.Preset != "" {
		return config.ApplyPreset(cfg, f.Preset)
	}
	return nil
}

// renderTo builds the view described by cfg and writes it to w.
func renderTo(w io.Writer, cfg *config.Config, logger *log.Logger) error {
	if len(cfg.Steps) == 0 {
		return ErrNoSteps
	}
	v, err := config.Build(cfg, logger)
	if err != nil {
		return err
	}

	width := cfg.Width
	if width <= 0 {
		width = terminalWidth()
	}
	if v.Orientation() == "horizontal" {
		v.SetBounds(stepview.Exact(width), stepview.Unbounded())
	} else {
		v.SetBounds(stepview.UpTo(width), stepview.Unbounded())
	}

	logger.Debug("rendering", "orientation", v.Orientation(), "count", len(cfg.Steps), "width", width)
	_, err = fmt.Fprintln(w, v.Render())
	return err
}

// watchAndRender re-renders on every change to file until the command
// context is cancelled.
func watchAndRender(cmd *cobra.Command, out io.Writer, file string, logger *log.Logger) error {
	w, err := watch.NewWatcher(file, watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching for changes", "file", w.Path())
	termOut := termenv.NewOutput(out)

	for ev := range w.Watch(cmd.Context()) {
		if ev.Removed {
			logger.Warn("config file removed, waiting for it to return", "file", ev.Path)
			continue
		}
		cfg, _, err := renderConfig(cmd)
		if err != nil {
			logger.Error("reload failed", "file", ev.Path, "err", err)
			continue
		}
		termOut.ClearScreen()
		if err := renderTo(out, cfg, logger); err != nil {
			logger.Error("render failed", "err", err)
		}
	}
	return nil
}

// terminalWidth returns the width of stdout, or a fallback when stdout is
// not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
