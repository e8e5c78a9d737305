package log

// Logger receives session events.
// Pass nil or NoopLogger to disable session logging.
type Logger interface {
	// Log records an event. The engine calls it from its tick loop, so it
	// should return quickly.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
