// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// Both human-readable CLI output and structured JSON diagnostics implement
// this interface, so callers can switch per invocation.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with structured JSON line output. It is used
// for machine-readable diagnostics, such as per-file progress and error
// reporting during bulk generation runs.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewJSONLogger creates a new JSON logger writing to w. A nil writer
// discards output.
func NewJSONLogger(w io.Writer) *JSONLogger {
	if w == nil {
		w = io.Discard
	}
	return &JSONLogger{writer: w}
}

// Printf formats and logs a structured message in JSON format.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	j.emit(fmt.Sprint(v...))
}

// emit writes one JSON log line.
func (j *JSONLogger) emit(msg string) {
	logEntry := map[string]any{
		"level":   "info",
		"message": msg,
	}

	data, _ := json.Marshal(logEntry)

	j.mu.Lock()
	fmt.Fprintln(j.writer, string(data))
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
