// Package logging implements the domain logger on charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/ochairo/sbomdiff/internal/domain/interfaces"
)

// Options configures the charm logger
type Options struct {
	Level      string
	JSON       bool
	Output     io.Writer
	TimeFormat string
}

// charmLogger implements interfaces.Logger
type charmLogger struct {
	logger *charmlog.Logger
}

// ParseLevel maps a configured level name onto a charm level.
// An empty name selects info.
func ParseLevel(level string) (charmlog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return charmlog.InfoLevel, nil
	}
	parsed, err := charmlog.ParseLevel(level)
	if err != nil {
		return charmlog.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return parsed, nil
}

// NewLogger creates a domain logger writing to opts.Output (stderr by default)
func NewLogger(opts Options) (interfaces.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	logger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
	if opts.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	} else {
		logger.SetFormatter(charmlog.TextFormatter)
	}

	return &charmLogger{logger: logger}, nil
}

// Debug logs debug-level messages
func (l *charmLogger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, interfaces.KeyVals(fields)...)
}

// Info logs informational messages
func (l *charmLogger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, interfaces.KeyVals(fields)...)
}

// Warn logs warning messages
func (l *charmLogger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, interfaces.KeyVals(fields)...)
}

// Error logs error messages
func (l *charmLogger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, interfaces.KeyVals(fields)...)
}
