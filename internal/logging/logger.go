package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Prefix is printed before every log line.
const Prefix = "stepview"

// Options mirrors the global logging flags.
type Options struct {
	Level   string
	NoColor bool
	Quiet   bool
}

// New builds a logger writing to w. Quiet mode discards everything.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	if opts.Quiet {
		return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}), nil
	}

	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	options := log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          Prefix,
		ReportCaller:    level == log.DebugLevel,
	}
	if opts.NoColor {
		options.Formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, options)

	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(lipgloss.Color("#4fc1ff"))
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(lipgloss.Color("#eab308"))
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(lipgloss.Color("#ef4444"))
	styles.Levels[log.FatalLevel] = styles.Levels[log.FatalLevel].Foreground(lipgloss.Color("#ef4444")).Bold(true)
	for key, color := range map[string]string{
		"file":  "#a78bfa",
		"err":   "#ef4444",
		"count": "#22c55e",
	} {
		styles.Keys[key] = styles.Keys[key].Foreground(lipgloss.Color(color))
	}
	logger.SetStyles(styles)

	return logger, nil
}

// Setup builds the stderr logger from the global flags and stores it on the
// command context.
func Setup(cmd *cobra.Command, opts Options) error {
	logger, err := New(os.Stderr, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(WithLogger(ctx, logger))
	return nil
}

// Get retrieves the logger from the command context
func Get(cmd *cobra.Command) *log.Logger {
	if logger := From(cmd.Context()); logger != nil {
		return logger
	}
	return log.New(os.Stderr)
}
