package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// fieldValue pairs a config key with its value, in reporting order.
type fieldValue struct {
	field, value string
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the config for consistency. It returns every problem found
// rather than stopping at the first.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	switch strings.ToLower(cfg.Orientation) {
	case "horizontal", "vertical":
	default:
		errs = append(errs, ValidationError{
			Field:   "orientation",
			Message: fmt.Sprintf("must be horizontal or vertical, got %q", cfg.Orientation),
		})
	}

	if cfg.Preset != "" {
		if _, err := Preset(cfg.Preset); err != nil {
			errs = append(errs, ValidationError{Field: "preset", Message: err.Error()})
		}
	}

	if cfg.Width < 0 {
		errs = append(errs, ValidationError{Field: "width", Message: "must be >= 0"})
	}
	if cfg.TextSize <= 0 {
		errs = append(errs, ValidationError{Field: "textSize", Message: "must be > 0"})
	}
	if cfg.CircleRadius <= 0 {
		errs = append(errs, ValidationError{Field: "circleRadius", Message: "must be > 0"})
	}
	if cfg.LineLength < 0 {
		errs = append(errs, ValidationError{Field: "lineLength", Message: "must be >= 0"})
	}
	if cfg.Density.Cols <= 0 || cfg.Density.Rows <= 0 {
		errs = append(errs, ValidationError{
			Field:   "density",
			Message: fmt.Sprintf("cols and rows must be > 0, got %g x %g", cfg.Density.Cols, cfg.Density.Rows),
		})
	}

	colors := []fieldValue{
		{"colors.completedText", cfg.Colors.CompletedText},
		{"colors.currentText", cfg.Colors.CurrentText},
		{"colors.notCompletedText", cfg.Colors.NotCompletedText},
		{"colors.completedLine", cfg.Colors.CompletedLine},
		{"colors.notCompletedLine", cfg.Colors.NotCompletedLine},
		{"icons.completed.color", cfg.Icons.Completed.Color},
		{"icons.current.color", cfg.Icons.Current.Color},
		{"icons.notCompleted.color", cfg.Icons.NotCompleted.Color},
	}
	for _, c := range colors {
		if c.value != "" && !validColor(c.value) {
			errs = append(errs, ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("%q is not a hex colour or ANSI index (0-255)", c.value),
			})
		}
	}

	glyphs := []fieldValue{
		{"icons.completed.glyph", cfg.Icons.Completed.Glyph},
		{"icons.current.glyph", cfg.Icons.Current.Glyph},
		{"icons.notCompleted.glyph", cfg.Icons.NotCompleted.Glyph},
	}
	for _, g := range glyphs {
		if g.value != "" && runewidth.StringWidth(g.value) != 1 {
			errs = append(errs, ValidationError{
				Field:   g.field,
				Message: fmt.Sprintf("%q must be exactly one cell wide", g.value),
			})
		}
	}

	for i, s := range cfg.Steps {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("steps[%d].name", i),
				Message: "must not be empty",
			})
		}
	}

	return errs
}

func validColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
