package log

// Logger is the interface applications implement to receive timer events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a timer event. Implementations must be thread-safe.
	// The event should be processed quickly; the collection lock may be held.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// OrNoop returns l, or NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
