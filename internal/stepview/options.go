package stepview

import "github.com/charmbracelet/log"

type options struct {
	density Density
	logger  *log.Logger
	measure TextMeasurer
}

// Option configures a View at construction.
type Option func(*options)

// WithDensity sets the dp to cell converter.
func WithDensity(d Density) Option {
	return func(o *options) { o.density = d }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTextMeasurer replaces the label measurer.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(o *options) { o.measure = m }
}

func buildOptions(opts []Option) options {
	o := options{
		density: DefaultDensity,
		logger:  log.Default(),
		measure: MeasureText,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.measure == nil {
		o.measure = MeasureText
	}
	return o
}
