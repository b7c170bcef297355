package common

import (
	"context"
	"log"
)

// GameLogger provides structured logging for engine and command activity
type GameLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// StdGameLogger writes through the standard library logger, dropping
// entries below its configured level.
type StdGameLogger struct {
	logger   *log.Logger
	minLevel int
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// NewStdGameLogger creates a GameLogger over the given logger, or the
// standard logger when nil. Unknown levels are treated as info.
func NewStdGameLogger(logger *log.Logger, minLevel string) *StdGameLogger {
	if logger == nil {
		logger = log.Default()
	}
	rank, ok := levelRank[minLevel]
	if !ok {
		rank = levelRank["info"]
	}
	return &StdGameLogger{logger: logger, minLevel: rank}
}

// Log writes one entry, appending metadata when present.
func (l *StdGameLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank["info"]
	}
	if rank < l.minLevel {
		return
	}
	if len(metadata) == 0 {
		l.logger.Printf("[%s] %s", level, message)
		return
	}
	l.logger.Printf("[%s] %s %v", level, message, metadata)
}

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger GameLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if none is attached
func LoggerFromContext(ctx context.Context) GameLogger {
	if logger, ok := ctx.Value(loggerKey).(GameLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}
