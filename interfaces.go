package probability

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// levelSetter is implemented by loggers whose level can change at runtime
type levelSetter interface {
	SetLevel(level string)
}
