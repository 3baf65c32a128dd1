// Package diag provides the structured diagnostic stream for the pipeline.
// Every event carries a stage and, where applicable, a row reference, so
// tests can assert on emitted events instead of scraping log text.
package diag

import (
	"log/slog"
	"os"
	"strings"
)

// Pipeline stages referenced by diagnostic events.
const (
	StageLoad   = "load"
	StageRender = "render"
)

// Logger wraps slog.Logger with pipeline-specific event helpers.
type Logger struct {
	*slog.Logger
}

// New creates a logger for the given environment: debug text output in
// development, JSON at info level otherwise.
func New(env string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewWithHandler creates a logger backed by an arbitrary handler. Tests pair
// it with Capture.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{Logger: slog.New(h)}
}

// RowSkipped records a row excluded by coordinate validation. Not an error:
// skipping is expected for malformed source rows. ref is a source line
// ("line:7") at load time and a row ID at render time.
func (l *Logger) RowSkipped(stage, ref, reason string) {
	l.Debug("row_skipped",
		slog.String("stage", stage),
		slog.String("row", ref),
		slog.String("reason", reason),
	)
}

// RowError records a per-row construction failure. The batch continues.
func (l *Logger) RowError(stage, rowID string, err error) {
	l.Warn("row_error",
		slog.String("stage", stage),
		slog.String("row", rowID),
		slog.String("error", err.Error()),
	)
}

// LoadFailed records a terminal dataset load failure.
func (l *Logger) LoadFailed(source string, err error) {
	l.Error("load_failed",
		slog.String("stage", StageLoad),
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

// DatasetLoaded records a successful load with its partition counts.
func (l *Logger) DatasetLoaded(source string, geolocatable, skipped int) {
	l.Info("dataset_loaded",
		slog.String("stage", StageLoad),
		slog.String("source", source),
		slog.Int("geolocatable", geolocatable),
		slog.Int("skipped", skipped),
	)
}
