package pagekit

import "log"

// Logger is the logging surface used by the toolkit.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// DefaultLogger writes through the standard log package. Debug lines are
// dropped unless debug is enabled.
type DefaultLogger struct {
	name  string
	debug bool
}

// NewDefaultLogger creates a named logger.
func NewDefaultLogger(name string, debug bool) *DefaultLogger {
	return &DefaultLogger{name: name, debug: debug}
}

func (d *DefaultLogger) Debug(format string, args ...any) {
	if d.debug {
		log.Printf("[DEBUG] "+d.name+" | "+format+"\n", args...)
	}
}

func (d *DefaultLogger) Info(format string, args ...any) {
	log.Printf("[INFO] "+d.name+" | "+format+"\n", args...)
}

func (d *DefaultLogger) Error(format string, args ...any) {
	log.Printf("[ERROR] "+d.name+" | "+format+"\n", args...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NopLogger discards everything.
func NopLogger() Logger { return nopLogger{} }
