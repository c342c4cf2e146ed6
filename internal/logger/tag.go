// internal/logger/tag.go
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// debugFilter enables stderr diagnostics from the filtering pipeline
// itself. Toggled by the -debug-log flag.
var debugFilter bool

// SetFilterDebug toggles the filtering system's own diagnostics.
func SetFilterDebug(enabled bool) {
	debugFilter = enabled
}

// logTagAtLevel logs a record carrying the tag attribute the filtering
// handler matches against, capturing the caller of the *Tagf wrapper.
func logTagAtLevel(level slog.Level, tag, format string, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logTagAtLevel and the *Tagf wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(slog.String(tagKey, tag))
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// DebugTagf logs a tagged debug message using Printf-style formatting.
func DebugTagf(tag, format string, args ...interface{}) {
	logTagAtLevel(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs a tagged info message using Printf-style formatting.
func InfoTagf(tag, format string, args ...interface{}) {
	logTagAtLevel(slog.LevelInfo, tag, format, args...)
}

// WarnTagf logs a tagged warning message using Printf-style formatting.
func WarnTagf(tag, format string, args ...interface{}) {
	logTagAtLevel(slog.LevelWarn, tag, format, args...)
}

// ErrorTagf logs a tagged error message using Printf-style formatting.
func ErrorTagf(tag, format string, args ...interface{}) {
	logTagAtLevel(slog.LevelError, tag, format, args...)
}
