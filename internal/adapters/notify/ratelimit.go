package notify

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/featherlane/henhouse-go/internal/application/engine"
)

// RateLimitedToastSink wraps a sink and drops messages that repeat a
// severity faster than its minimum interval. Keeps noisy periodic
// warnings (low feed every tick) from flooding the player.
type RateLimitedToastSink struct {
	next     engine.ToastSink
	interval time.Duration

	mu       sync.Mutex
	limiters map[engine.Severity]*rate.Limiter
}

// NewRateLimitedToastSink wraps next with a per-severity minimum interval.
func NewRateLimitedToastSink(next engine.ToastSink, interval time.Duration) *RateLimitedToastSink {
	return &RateLimitedToastSink{
		next:     next,
		interval: interval,
		limiters: make(map[engine.Severity]*rate.Limiter),
	}
}

// Emit forwards the toast unless its severity is over the rate limit.
// Success and error toasts always pass.
func (s *RateLimitedToastSink) Emit(message string, severity engine.Severity) {
	if severity == engine.SeveritySuccess || severity == engine.SeverityError {
		s.next.Emit(message, severity)
		return
	}
	if s.limiter(severity).Allow() {
		s.next.Emit(message, severity)
	}
}

func (s *RateLimitedToastSink) limiter(severity engine.Severity) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[severity]
	if !ok {
		l = rate.NewLimiter(rate.Every(s.interval), 1)
		s.limiters[severity] = l
	}
	return l
}
