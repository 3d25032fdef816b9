package element

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the package logger. Pass nil to restore the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
