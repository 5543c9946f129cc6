/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for CrystalSQL.
// Each translation component logs under its own name so batch runs over
// large reports stay traceable.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Level defines log levels
type Level int

const (
	// DEBUG debug level, displays detailed translation steps
	DEBUG Level = iota
	// INFO info level, displays batch progress and summaries
	INFO
	// WARN warning level, displays per-item translation warnings
	WARN
	// ERROR error level, only displays failures
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging interface the translation components use.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// Named returns a logger that tags every line with a component name
	Named(name string) Logger
	// SetLevel sets the log level
	SetLevel(level Level)
}

type defaultLogger struct {
	level  *Level
	name   string
	logger *log.Logger
}

// New creates a logger writing to output at the given level.
func New(level Level, output io.Writer) Logger {
	return &defaultLogger{
		level:  &level,
		logger: log.New(output, "", 0),
	}
}

func (l *defaultLogger) Named(name string) Logger {
	return &defaultLogger{level: l.level, name: name, logger: l.logger}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	*l.level = level
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	if *l.level == OFF || level < *l.level {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	if l.name != "" {
		l.logger.Printf("[%s] [%s] [%s] %s", timestamp, level.String(), l.name, message)
		return
	}
	l.logger.Printf("[%s] [%s] %s", timestamp, level.String(), message)
}

// discardLogger drops all output. Used by library callers that manage their
// own logging.
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs.
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

func (d *discardLogger) Debug(format string, args ...interface{}) {}
func (d *discardLogger) Info(format string, args ...interface{})  {}
func (d *discardLogger) Warn(format string, args ...interface{})  {}
func (d *discardLogger) Error(format string, args ...interface{}) {}
func (d *discardLogger) Named(name string) Logger                 { return d }
func (d *discardLogger) SetLevel(level Level)                     {}

// Global default logger
var defaultInstance = New(INFO, os.Stdout)

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultInstance = logger
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance
}
