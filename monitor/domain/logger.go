package domain

// Logger defines the contract for logging operations with different severity levels.
// Implementations are injected into every component that reports anything.
type Logger interface {
	// Debug logs a diagnostic message with optional formatted arguments.
	Debug(msg string, args ...interface{})
	// Info logs an informational message with optional formatted arguments.
	Info(msg string, args ...interface{})
	// Error logs an error message with optional formatted arguments.
	Error(msg string, args ...interface{})
}
