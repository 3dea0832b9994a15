package scsdk

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger is the minimal structured logging interface used for debug output.
// Key/value pairs follow the message.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// SimpleLogger writes leveled log lines to stderr.
type SimpleLogger struct{}

// NewSimpleLogger creates a console logger suitable for development.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{}
}

func (l *SimpleLogger) log(level, msg string, keysAndValues ...interface{}) {
	line := fmt.Sprintf("%s [%s] %s", time.Now().Format(time.RFC3339), level, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		line += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	fmt.Fprintln(os.Stderr, line)
}

// Debug logs at debug level.
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log("DEBUG", msg, keysAndValues...)
}

// Info logs at info level.
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log("INFO", msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log("WARN", msg, keysAndValues...)
}

// Error logs at error level.
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log("ERROR", msg, keysAndValues...)
}

// DebugConfig controls per-request debug logging.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool

	// RequestIDGen produces correlation ids for log lines.
	RequestIDGen func() string
}

// DefaultDebugConfig returns a disabled configuration with request and
// response logging preselected and UUID request ids.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		RequestIDGen: uuid.NewString,
	}
}
