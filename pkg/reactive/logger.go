package reactive

import "log/slog"

// logger is the diagnostics sink for the package. Recovered panics from
// subscribers and effect bodies are reported here.
var logger = slog.Default()

// SetLogger replaces the package diagnostics sink.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
