package plotgd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog bails
// out before formatting attributes and a silent module costs nothing
// on the draw path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the silent default logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger behind an atomic pointer because
// SetLogger may race with rendering or bridge goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger installs l as the logger shared by plotgd and its
// sub-packages. The module is silent until a logger is installed;
// passing nil returns it to silence. Safe to call at any time, from
// any goroutine.
//
// plotgd logs sparingly: [slog.LevelDebug] when a bridge submission
// coalesces into an already-pending wake, [slog.LevelWarn] when a
// renderer degrades its output (an image write aborted partway, a font
// family that cannot be resolved).
//
//	plotgd.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by [SetLogger]. The renderers,
// bridge and device packages route their records through it, so one
// call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
