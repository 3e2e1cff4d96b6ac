// Package logging is the structured logger used by the gap and mask packages.
//
// The library logs through the package-level logger, which defaults to a
// production zap logger at warn level. Applications replace it with
// SetGlobalLogger, or silence it with a NoOpLogger.
package logging

import (
	"fmt"
	"strings"
	"sync"
)

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name such as "debug" or "WARN" to its Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return WarnLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger defines the interface the library expects for logging.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

var (
	mu           sync.RWMutex
	globalLogger Logger
)

// SetGlobalLogger sets the global logger instance. A nil logger disables logging.
func SetGlobalLogger(logger Logger) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		globalLogger = NoOpLogger{}
		return
	}

	globalLogger = logger
}

// GetGlobalLogger returns the current global logger, creating the default
// zap logger on first use.
func GetGlobalLogger() Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()

	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		zl, err := NewZapLogger(false)
		if err != nil {
			globalLogger = NoOpLogger{}
		} else {
			zl.SetLevel(WarnLevel)
			globalLogger = zl
		}
	}

	return globalLogger
}

func Debug(msg string, fields ...Fields) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Error(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}

func SetLevel(level Level) {
	GetGlobalLogger().SetLevel(level)
}

// NoOpLogger discards everything. Tests use it to keep output quiet.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (n NoOpLogger) WithFields(Fields) Logger     { return n }
func (NoOpLogger) SetLevel(Level)                 {}
