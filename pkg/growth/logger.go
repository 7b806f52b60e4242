package growth

import "log"

// Logger receives diagnostics from the background feedback process.
// Arguments follow the message as alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger discards everything. It is the default when no logger is
// supplied.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// StdLogger adapts the standard library logger to the Logger interface.
type StdLogger struct {
	L *log.Logger
}

// NewStdLogger wraps l; a nil l uses the process default logger.
func NewStdLogger(l *log.Logger) StdLogger {
	if l == nil {
		l = log.Default()
	}
	return StdLogger{L: l}
}

func (s StdLogger) Debug(msg string, args ...any) { s.print("DEBUG", msg, args) }
func (s StdLogger) Info(msg string, args ...any)  { s.print("INFO", msg, args) }
func (s StdLogger) Warn(msg string, args ...any)  { s.print("WARN", msg, args) }
func (s StdLogger) Error(msg string, args ...any) { s.print("ERROR", msg, args) }

func (s StdLogger) print(level, msg string, args []any) {
	if len(args) == 0 {
		s.L.Printf("%s %s", level, msg)
		return
	}
	s.L.Printf("%s %s %v", level, msg, args)
}
