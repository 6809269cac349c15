package web

import (
	"log/slog"

	"productos-admin/internal/console"
)

// logNotifier sends notices to the log only. Used for the base console and
// for background table fills whose failures must not pop up a second alert.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Alert(message string) {
	n.logger.Warn("Alert suppressed", slog.String("message", message))
}

func (n logNotifier) Notify(no console.Notice) {
	n.logger.Debug("Notice suppressed", slog.String("level", string(no.Level)), slog.String("title", no.Title))
}

// NewLogNotifier returns a console.Notifier that only logs.
func NewLogNotifier(logger *slog.Logger) console.Notifier {
	return logNotifier{logger: logger}
}
