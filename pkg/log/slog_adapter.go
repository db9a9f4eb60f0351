package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes timer events to an slog.Logger.
// Useful for development when you want to see events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("kind", event.Kind.String()),
		slog.String("timer_id", event.TimerID),
		slog.Int("index", event.Index),
	}

	if event.Title != "" {
		attrs = append(attrs, slog.String("title", event.Title))
	}
	if event.TargetTime != 0 {
		attrs = append(attrs, slog.Int64("target_time", event.TargetTime))
	}
	if event.PausedRemaining != nil {
		attrs = append(attrs, slog.Int64("paused_remaining", *event.PausedRemaining))
	}
	if event.Count != 0 {
		attrs = append(attrs, slog.Int("count", event.Count))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "timer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
