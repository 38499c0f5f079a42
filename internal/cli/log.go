package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
)

// loggerKey is the context key carrying the command logger.
type loggerKey struct{}

// newLogger creates the CLI logger writing to w at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or the
// package default when the context carries none (e.g. in tests).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}
