// Package health diagnoses whether the terminal and configuration can show
// a step view correctly.
package health

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
)

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "terminal", "config"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Options configures what the checker inspects.
type Options struct {
	ConfigFile string               // explicit --config, "" to search
	Output     *os.File             // terminal to inspect, os.Stdout by default
	Getenv     func(string) string  // os.Getenv by default
	Width      *runewidth.Condition // glyph width rules, runewidth.DefaultCondition by default
}

// Checker runs all registered health checks.
type Checker struct {
	checks []Check
	opts   Options
}

// NewChecker creates a health checker.
func NewChecker(opts Options) *Checker {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Width == nil {
		opts.Width = runewidth.DefaultCondition
	}
	c := &Checker{opts: opts}
	c.registerChecks()
	return c
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, "")
}

// RunCategory runs only the checks matching the given category.
func (c *Checker) RunCategory(ctx context.Context, category string) *Report {
	return c.run(ctx, category)
}

func (c *Checker) run(ctx context.Context, category string) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if category != "" && ch.Category != category {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	return buildReport(results, time.Since(start))
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
