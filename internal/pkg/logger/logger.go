// Package logger provides the service wide logging abstraction.
package logger

// Logger defines the logging interface used by handlers, services and repositories
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
