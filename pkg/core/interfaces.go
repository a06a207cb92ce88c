package core

// Logger receives progress messages from renderers and dispatchers.
// Implementations must be safe for concurrent use.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all messages
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
