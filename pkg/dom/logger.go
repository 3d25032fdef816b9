package dom

import "log/slog"

// logger is the diagnostics sink for the package.
// Listener panics and microtask panics are reported here, never propagated.
var logger = slog.Default()

// SetLogger replaces the package diagnostics sink.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
