package pwaicon

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pwaicon and the gg library it draws
// with. By default nothing is logged. Pass nil to restore silence.
//
// Log levels used by pwaicon:
//   - [slog.LevelDebug]: font candidates tried and rejected, label placement
//   - [slog.LevelInfo]: backend acquired, font selected, file written
//   - [slog.LevelWarn]: chain fell through to the built-in bitmap font
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pwaicon.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
