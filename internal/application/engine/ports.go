package engine

import (
	"context"

	"github.com/featherlane/henhouse-go/internal/domain/farm"
)

// Severity levels for player-facing toasts.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ToastSink receives fire-and-forget player notifications. The engine
// never consumes a return value: a sink that drops messages is valid.
type ToastSink interface {
	Emit(message string, severity Severity)
}

// SoundKind identifies a cosmetic sound effect.
type SoundKind string

const (
	SoundClick   SoundKind = "click"
	SoundSuccess SoundKind = "success"
	SoundWarning SoundKind = "warning"
)

// SoundSink plays cosmetic sound effects. Ignorable for correctness.
type SoundSink interface {
	PlayEvent(kind SoundKind)
}

// SaveStore is the persistence boundary. Load returns (nil, nil) when no
// save exists under the name. Implementations must tolerate concurrent
// gameplay: the engine never blocks on them.
type SaveStore interface {
	Save(ctx context.Context, name string, state *farm.GameState) error
	Load(ctx context.Context, name string) (*farm.GameState, error)
	List(ctx context.Context) (map[string]*farm.GameState, error)
	Delete(ctx context.Context, name string) error
}

// MetricsRecorder receives gameplay observations from the tick loop.
type MetricsRecorder interface {
	ObserveState(state *farm.GameState)
	RecordTickDuration(seconds float64)
	RecordEggsLaid(count int, golden bool)
	RecordOrderCompleted()
	RecordOrderExpired()
	RecordProductCompleted()
}

// NopToastSink drops all toasts.
type NopToastSink struct{}

func (NopToastSink) Emit(message string, severity Severity) {}

// NopSoundSink drops all sound events.
type NopSoundSink struct{}

func (NopSoundSink) PlayEvent(kind SoundKind) {}

// NopMetrics drops all observations.
type NopMetrics struct{}

func (NopMetrics) ObserveState(state *farm.GameState)    {}
func (NopMetrics) RecordTickDuration(seconds float64)    {}
func (NopMetrics) RecordEggsLaid(count int, golden bool) {}
func (NopMetrics) RecordOrderCompleted()                 {}
func (NopMetrics) RecordOrderExpired()                   {}
func (NopMetrics) RecordProductCompleted()               {}
