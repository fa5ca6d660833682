package gradclip

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gradclip/internal/css"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with parsing from pointer-move handlers.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gradclip and its internal packages.
// By default gradclip produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by gradclip:
//   - [slog.LevelDebug]: dropped color stops, parse cache hits and misses
//   - [slog.LevelWarn]: fallbacks to the default black→white gradient
//
// Example:
//
//	gradclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	css.SetLogger(l)
}

// Logger returns the current logger used by gradclip.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
