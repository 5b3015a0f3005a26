package skeleton

import (
	"log/slog"
	"sync/atomic"
)

// discardLogger is returned by Logger until SetLogger installs another.
var discardLogger = slog.New(slog.DiscardHandler)

// current is nil until the first SetLogger call.
var current atomic.Pointer[slog.Logger]

// SetLogger routes skeleton's diagnostics to l. A nil l silences them
// again. It may be called concurrently with Render.
//
// Render logs at [slog.LevelDebug] only: the canvas size, the offset
// applied to the pen positions and the number of strokes.
//
//	skeleton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or one that discards
// everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discardLogger
}
