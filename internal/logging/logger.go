// Package logging provides the structured logger that the mrbuild and
// mrquery shells create and pass down to the loader to report progress.
// The core package (github.com/csqv/mrtree2d) and the workload generator
// never log.
package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a couple of domain-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a Logger around handler. A nil handler falls back to a
// text handler at Info level on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger builds a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewJSONLogger builds a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger discards everything logged through it.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// LogBulkLoad reports the outcome of a bulk-load build.
func (l *Logger) LogBulkLoad(points, capacity, height int, digestHex string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Error("bulk load failed", "points", points, "capacity", capacity, "error", err)
		return
	}
	l.Info("bulk load completed", "points", points, "capacity", capacity, "height", height, "root_digest", digestHex)
}

// LogQuery reports the outcome of a query-and-verify round trip.
func (l *Logger) LogQuery(matching, nodesVisited, nodesPruned int, verified bool) {
	if l == nil {
		return
	}
	l.Info("query completed",
		"matching", matching,
		"nodes_visited", nodesVisited,
		"nodes_pruned", nodesPruned,
		"verified", verified,
	)
}
