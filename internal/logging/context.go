package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is a private context key for storing the logger
type loggerKey struct{}

// WithLogger returns a child context that carries the provided logger
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From extracts a logger from the context, or nil if absent
func From(ctx context.Context) *log.Logger {
	if ctx == nil {
		return nil
	}
	if lgr, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return lgr
	}
	return nil
}
