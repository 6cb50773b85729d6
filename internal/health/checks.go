package health

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Dallionking/stepview/internal/config"
	"github.com/Dallionking/stepview/internal/stepview"
)

// minWidth is the narrowest terminal that fits a default five-step view.
const minWidth = 40

// registerChecks registers the terminal and config checks.
func (c *Checker) registerChecks() {
	// Terminal checks
	c.add("tty", "terminal", c.checkTTY)
	c.add("width", "terminal", c.checkWidth)
	c.add("colors", "terminal", c.checkColors)
	c.add("glyphs", "terminal", c.checkGlyphs)

	// Config checks
	c.add("config-file", "config", c.checkConfigFile)
	c.add("config-valid", "config", c.checkConfigValid)
	c.add("steps", "config", c.checkSteps)
}

// ---------------------------------------------------------------------------
// Terminal checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTTY(ctx context.Context) CheckResult {
	if term.IsTerminal(int(c.opts.Output.Fd())) {
		return CheckResult{Status: StatusPass, Message: "output is a terminal"}
	}
	return CheckResult{Status: StatusWarn, Message: "output is not a terminal; width falls back to 80"}
}

func (c *Checker) checkWidth(ctx context.Context) CheckResult {
	w, _, err := term.GetSize(int(c.opts.Output.Fd()))
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "cannot read terminal size"}
	}
	if w < minWidth {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%d columns; labels may overlap below %d", w, minWidth)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d columns", w)}
}

func (c *Checker) checkColors(ctx context.Context) CheckResult {
	if c.opts.Getenv("NO_COLOR") != "" {
		return CheckResult{Status: StatusWarn, Message: "NO_COLOR is set; states differ by glyph only"}
	}
	profile := termenv.NewOutput(c.opts.Output, termenv.WithEnvironment(envFunc(c.opts.Getenv))).EnvColorProfile()
	switch profile {
	case termenv.TrueColor:
		return CheckResult{Status: StatusPass, Message: "true color"}
	case termenv.ANSI256:
		return CheckResult{Status: StatusPass, Message: "256 colors"}
	case termenv.ANSI:
		return CheckResult{Status: StatusWarn, Message: "16 colors; hex colours are approximated"}
	default:
		return CheckResult{Status: StatusWarn, Message: "no color support detected"}
	}
}

func (c *Checker) checkGlyphs(ctx context.Context) CheckResult {
	var wide []string
	for _, icon := range []stepview.Icon{
		stepview.DefaultCompletedIcon,
		stepview.DefaultCurrentIcon,
		stepview.DefaultNotCompletedIcon,
	} {
		if c.opts.Width.StringWidth(icon.Glyph) != 1 {
			wide = append(wide, icon.Glyph)
		}
	}
	if len(wide) > 0 {
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s render two cells wide in this locale", strings.Join(wide, " ")),
		}
	}
	return CheckResult{Status: StatusPass, Message: "icons are one cell wide"}
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) findConfig() (string, error) {
	if c.opts.ConfigFile != "" {
		return c.opts.ConfigFile, nil
	}
	return config.DetectConfigFile()
}

func (c *Checker) checkConfigFile(ctx context.Context) CheckResult {
	path, err := c.findConfig()
	if errors.Is(err, config.ErrNoConfigFile) {
		return CheckResult{Status: StatusWarn, Message: "none found; defaults apply"}
	}
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	return CheckResult{Status: StatusPass, Message: path}
}

func (c *Checker) load() (*config.Config, error) {
	path, err := c.findConfig()
	if err != nil && !errors.Is(err, config.ErrNoConfigFile) {
		return nil, err
	}
	cfg, _, err := config.Load(path)
	return cfg, err
}

func (c *Checker) checkConfigValid(ctx context.Context) CheckResult {
	cfg, err := c.load()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return CheckResult{
			Status:  StatusFail,
			Message: fmt.Sprintf("%d problem(s), first: %s", len(errs), errs[0].Error()),
		}
	}
	return CheckResult{Status: StatusPass, Message: "valid"}
}

func (c *Checker) checkSteps(ctx context.Context) CheckResult {
	cfg, err := c.load()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "config did not load"}
	}
	if len(cfg.Steps) == 0 {
		return CheckResult{Status: StatusWarn, Message: "no steps; pass --step to render"}
	}
	current := 0
	for _, s := range cfg.Steps {
		if s.State == stepview.Current {
			current++
		}
	}
	if current > 1 {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%d steps, %d marked current", len(cfg.Steps), current)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d steps", len(cfg.Steps))}
}

// envFunc adapts a getenv function to termenv's Environ interface.
type envFunc func(string) string

func (f envFunc) Getenv(key string) string { return f(key) }

func (f envFunc) Environ() []string { return nil }
