package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level controls which messages are written
type Level int

const (
	// LevelOff disables all output
	LevelOff Level = iota
	// LevelNormal writes info, warn and error messages
	LevelNormal
	// LevelVerbose also writes debug messages
	LevelVerbose
)

var (
	levelMu      sync.RWMutex
	defaultLevel = LevelNormal
)

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values mean LevelNormal.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "silent":
		return LevelOff
	case "debug", "verbose":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// SetLevel sets the level used by every logger
func SetLevel(level Level) {
	levelMu.Lock()
	defer levelMu.Unlock()
	defaultLevel = level
}

func currentLevel() Level {
	levelMu.RLock()
	defer levelMu.RUnlock()
	return defaultLevel
}

// Logger is a wrapper around the standard library logger
type Logger struct {
	*log.Logger
	scope string
}

// New creates a new logger writing to stdout. scope is usually a chat ID and may be empty.
func New(scope string) *Logger {
	return NewWithWriter(scope, os.Stdout)
}

// NewWithWriter creates a new logger writing to out
func NewWithWriter(scope string, out io.Writer) *Logger {
	return &Logger{
		Logger: log.New(out, "", 0),
		scope:  scope,
	}
}

// With returns a logger sharing the output of l with a different scope
func (l *Logger) With(scope string) *Logger {
	return &Logger{Logger: l.Logger, scope: scope}
}

// formatMessage formats a log message with timestamp and scope
func (l *Logger) formatMessage(level, format string, v ...interface{}) string {
	timestamp := time.Now().Format(time.RFC3339)
	message := fmt.Sprintf(format, v...)

	if l.scope != "" {
		return fmt.Sprintf("[%s] [%s] [Chat: %s] %s", timestamp, level, l.scope, message)
	}

	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if currentLevel() >= LevelNormal {
		l.Logger.Println(l.formatMessage("INFO", format, v...))
	}
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if currentLevel() >= LevelNormal {
		l.Logger.Println(l.formatMessage("ERROR", format, v...))
	}
}

// Debug logs a debug message, only written at LevelVerbose
func (l *Logger) Debug(format string, v ...interface{}) {
	if currentLevel() >= LevelVerbose {
		l.Logger.Println(l.formatMessage("DEBUG", format, v...))
	}
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	if currentLevel() >= LevelNormal {
		l.Logger.Println(l.formatMessage("WARN", format, v...))
	}
}

// Global logger instance for application-wide logging
var Global = New("")

// SetGlobal sets the global logger
func SetGlobal(logger *Logger) {
	Global = logger
}
