// Package mclog provides the leveled logger used throughout the protocol
// runtime. It wraps the standard library's log.Logger the way the protocol
// layer's connection type always has: one *log.Logger, a level gate, and a
// handful of printf-style helpers.
package mclog

import (
	"encoding/hex"
	"log"
	"os"
)

// Level is a logging verbosity level. Higher values are more verbose.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger is a level-gated wrapper around *log.Logger.
type Logger struct {
	level  Level
	logger *log.Logger
}

// New returns a Logger writing to os.Stdout at LevelInfo.
func New() *Logger {
	return &Logger{
		level:  LevelInfo,
		logger: log.New(os.Stdout, "[mc767] ", log.LstdFlags),
	}
}

// SetLevel changes the verbosity gate.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// SetOutput replaces the underlying *log.Logger.
func (l *Logger) SetOutput(logger *log.Logger) {
	l.logger = logger
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.logger == nil || level > l.level {
		return
	}
	l.logger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// DebugEnabled reports whether Debug-level tracing is active, so callers
// can skip building an expensive trace payload (e.g. a hex dump) when it
// would be discarded anyway.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.level >= LevelDebug
}

// HexSnippet returns a hex string of at most max bytes of data, truncated
// with a trailing ellipsis marker, for use in debug trace lines.
func HexSnippet(data []byte, max int) string {
	if data == nil {
		return ""
	}
	if max > 0 && len(data) > max {
		return hex.EncodeToString(data[:max]) + "..."
	}
	return hex.EncodeToString(data)
}
