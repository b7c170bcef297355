package notify

import (
	"log"

	"github.com/featherlane/henhouse-go/internal/application/engine"
)

// LogToastSink prints toasts to the daemon log. The headless daemon has
// no UI; toasts are observability output here.
type LogToastSink struct {
	logger *log.Logger
}

// NewLogToastSink creates a sink writing through the given logger, or
// the standard logger when nil.
func NewLogToastSink(logger *log.Logger) *LogToastSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogToastSink{logger: logger}
}

// Emit writes the toast with its severity tag.
func (s *LogToastSink) Emit(message string, severity engine.Severity) {
	s.logger.Printf("[%s] %s", severity, message)
}

// LogSoundSink logs sound events instead of playing them.
type LogSoundSink struct {
	logger *log.Logger
}

// NewLogSoundSink creates a sink writing through the given logger, or
// the standard logger when nil.
func NewLogSoundSink(logger *log.Logger) *LogSoundSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSoundSink{logger: logger}
}

// PlayEvent logs the sound kind.
func (s *LogSoundSink) PlayEvent(kind engine.SoundKind) {
	s.logger.Printf("[sound] %s", kind)
}
