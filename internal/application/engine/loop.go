package engine

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LoopConfig sets the periods of the game's timers.
type LoopConfig struct {
	TickInterval     time.Duration
	CustomerInterval time.Duration
	ExpiryInterval   time.Duration
	AutosaveInterval time.Duration
}

// DefaultLoopConfig returns the production timer cadence.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		TickInterval:     100 * time.Millisecond,
		CustomerInterval: 10 * time.Second,
		ExpiryInterval:   10 * time.Second,
		AutosaveInterval: 5 * time.Second,
	}
}

func (c *LoopConfig) applyDefaults() {
	d := DefaultLoopConfig()
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.CustomerInterval <= 0 {
		c.CustomerInterval = d.CustomerInterval
	}
	if c.ExpiryInterval <= 0 {
		c.ExpiryInterval = d.ExpiryInterval
	}
	if c.AutosaveInterval <= 0 {
		c.AutosaveInterval = d.AutosaveInterval
	}
}

// Loop drives the engine with a set of periodic timers: the main tick,
// the variable-period egg accrual timer, customer arrival, order expiry
// and autosave. A single goroutine runs every timer body, so only one
// mutation is in flight at a time.
type Loop struct {
	engine   *Engine
	store    SaveStore
	saveName string
	toasts   ToastSink
	cfg      LoopConfig

	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
}

// NewLoop builds a loop around the engine. store may be nil, disabling
// autosave (used by offline simulation).
func NewLoop(e *Engine, store SaveStore, saveName string, toasts ToastSink, cfg LoopConfig) *Loop {
	cfg.applyDefaults()
	if toasts == nil {
		toasts = NopToastSink{}
	}
	return &Loop{
		engine:   e,
		store:    store,
		saveName: saveName,
		toasts:   toasts,
		cfg:      cfg,
	}
}

// Start launches the loop goroutine. Starting twice is a guarded no-op.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	go l.run(ctx)
}

// Stop cancels every timer and waits for the loop goroutine to exit.
// Stopping twice, or before Start, is safe.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	l.started = false
	close(l.stopCh)
	done := l.doneCh
	l.mu.Unlock()
	<-done
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.doneCh)

	tick := time.NewTicker(l.cfg.TickInterval)
	defer tick.Stop()
	customers := time.NewTicker(l.cfg.CustomerInterval)
	defer customers.Stop()
	expiry := time.NewTicker(l.cfg.ExpiryInterval)
	defer expiry.Stop()
	autosave := time.NewTicker(l.cfg.AutosaveInterval)
	defer autosave.Stop()

	// The accrual timer's period depends on the flock size; it is a
	// one-shot timer re-armed after every firing and restarted whenever
	// the period changes.
	accrualPeriod := l.engine.AccrualPeriod()
	accrual := time.NewTimer(accrualPeriod)
	defer accrual.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		case now := <-tick.C:
			l.engine.Advance(now.UTC())
			if p := l.engine.AccrualPeriod(); p != accrualPeriod {
				// Flock size changed: restart the lay timer at its new rate.
				if !accrual.Stop() {
					select {
					case <-accrual.C:
					default:
					}
				}
				accrual.Reset(p)
				accrualPeriod = p
			}
		case <-accrual.C:
			l.engine.AccrueEggs()
			accrualPeriod = l.engine.AccrualPeriod()
			accrual.Reset(accrualPeriod)
		case <-customers.C:
			l.engine.SweepArrivals()
		case <-expiry.C:
			l.engine.SweepExpirations()
		case <-autosave.C:
			l.persist(ctx)
		}
	}
}

// persist writes the current state through the save store. Failures
// degrade to a toast; gameplay continues on the in-memory state.
func (l *Loop) persist(ctx context.Context) {
	if l.store == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := l.store.Save(saveCtx, l.saveName, l.engine.Snapshot()); err != nil {
		l.toasts.Emit(fmt.Sprintf("Autosave failed: %v", err), SeverityWarning)
	}
}
