// Package logging builds the operator-facing zerolog logger. It never writes
// to stdout: stdout carries the report and per-record diagnostics only.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultLevel = zerolog.WarnLevel

// New configures a logger writing to w. Format "json" emits one JSON object
// per event; anything else uses the human readable console writer. Unknown
// levels fall back to DefaultLevel.
func New(format, level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = DefaultLevel
	}

	out := w
	if strings.ToLower(strings.TrimSpace(format)) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// WithRun tags every event of logger with a fresh run id.
func WithRun(logger zerolog.Logger) (zerolog.Logger, string) {
	runID := uuid.New().String()
	return logger.With().Str("run_id", runID).Logger(), runID
}
