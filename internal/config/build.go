package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Dallionking/stepview/internal/stepview"
)

// ErrInvalidStepSpec is returned by ParseStepSpec for malformed input.
var ErrInvalidStepSpec = errors.New("invalid step spec")

// ParseStepSpec parses "name" or "name:state" as given on the command line.
func ParseStepSpec(s string) (StepConfig, error) {
	name, state, _ := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return StepConfig{}, fmt.Errorf("%w %q: empty name", ErrInvalidStepSpec, s)
	}
	st, err := stepview.ParseState(state)
	if err != nil {
		return StepConfig{}, fmt.Errorf("%w %q: %w", ErrInvalidStepSpec, s, err)
	}
	return StepConfig{Name: name, State: st}, nil
}

// StepList converts the configured steps to widget steps.
func (c *Config) StepList() []stepview.Step {
	steps := make([]stepview.Step, len(c.Steps))
	for i, s := range c.Steps {
		steps[i] = stepview.NewStepWithState(s.Name, s.State)
	}
	return steps
}

// Build constructs a view from cfg. Empty colours and glyphs keep the widget
// defaults.
func Build(cfg *Config, logger *log.Logger) (*stepview.View, error) {
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errs[0])
	}

	opts := []stepview.Option{
		stepview.WithDensity(stepview.Density{Cols: cfg.Density.Cols, Rows: cfg.Density.Rows}),
	}
	if logger != nil {
		opts = append(opts, stepview.WithLogger(logger))
	}

	var v *stepview.View
	if strings.EqualFold(cfg.Orientation, "vertical") {
		v = stepview.NewVertical(opts...)
	} else {
		v = stepview.NewHorizontal(opts...)
	}

	if err := v.SetTextSize(cfg.TextSize); err != nil {
		return nil, err
	}

	v.SetCircleRadius(cfg.CircleRadius).
		SetLineLength(cfg.LineLength).
		SetReverse(cfg.Reverse).
		SetNotCompletedLineDashed(cfg.DashedLine)

	applyColor(cfg.Colors.CompletedText, func(c lipgloss.TerminalColor) { v.SetCompletedTextColor(c) })
	applyColor(cfg.Colors.CurrentText, func(c lipgloss.TerminalColor) { v.SetCurrentTextColor(c) })
	applyColor(cfg.Colors.NotCompletedText, func(c lipgloss.TerminalColor) { v.SetNotCompletedTextColor(c) })
	applyColor(cfg.Colors.CompletedLine, func(c lipgloss.TerminalColor) { v.SetCompletedLineColor(c) })
	applyColor(cfg.Colors.NotCompletedLine, func(c lipgloss.TerminalColor) { v.SetNotCompletedLineColor(c) })

	v.SetCompletedIcon(icon(cfg.Icons.Completed, v.CompletedIcon()))
	v.SetCurrentIcon(icon(cfg.Icons.Current, v.CurrentIcon()))
	v.SetNotCompletedIcon(icon(cfg.Icons.NotCompleted, v.NotCompletedIcon()))

	if len(cfg.Steps) > 0 {
		v.SetSteps(cfg.StepList())
	}
	return v, nil
}

func applyColor(value string, set func(lipgloss.TerminalColor)) {
	if value != "" {
		set(lipgloss.Color(value))
	}
}

func icon(ic IconConfig, fallback stepview.Icon) stepview.Icon {
	if ic.Glyph != "" {
		fallback.Glyph = ic.Glyph
	}
	if ic.Color != "" {
		fallback.Color = lipgloss.Color(ic.Color)
	}
	return fallback
}
