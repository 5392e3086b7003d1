// Package logger provides a leveled printf-style logger writing to a file
// and to stdout simultaneously.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level severity of a log record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger leveled logger with a file sink.
type Logger struct {
	minLevel Level
	std      *log.Logger
	file     *os.File
}

// New creates a logger writing to the given file (created together with its
// directory if missing) and to stdout. Level is one of debug|info|warn|error.
func New(filePath, level string) (*Logger, error) {
	minLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file: %w", err)
	}

	return &Logger{
		minLevel: minLevel,
		std:      log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags|log.Lmicroseconds),
		file:     file,
	}, nil
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs a debug-level message.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info logs an info-level message.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn logs a warning-level message.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error logs an error-level message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal logs an error-level message and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

func (l *Logger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.minLevel {
		return
	}
	l.std.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func parseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", s)
	}
}
