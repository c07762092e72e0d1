// Package logger provides a thin wrapper around zerolog.Logger for the encbox command line.
//
// Diagnostics go to stderr so that stdout carries only ciphertexts and plaintexts.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Format selects how log entries are rendered.
type Format string

const (
	// FormatConsole renders human readable lines.
	FormatConsole Format = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
)

// Logger embeds zerolog.Logger so all zerolog methods are available directly.
type Logger struct {
	zerolog.Logger
}

// New returns a Logger writing to w. Debug entries are emitted only when verbose is set.
// Unknown formats fall back to FormatConsole.
func New(w io.Writer, verbose bool, format Format) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if Format(strings.ToLower(string(format))) != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	return &Logger{zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the Logger stored in ctx, or a disabled Logger when there is none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
