package engine

import (
	"time"

	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

// Simulate advances an engine built on a MockClock by d, firing the
// same timers the live loop would: ticks, the variable-period egg
// accrual, customer arrivals and order expiry. Used by the offline
// `simulate` CLI command and by tests.
func Simulate(e *Engine, clock *shared.MockClock, d time.Duration, tick time.Duration) {
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	end := clock.Now().Add(d)
	nextAccrual := clock.Now().Add(e.AccrualPeriod())
	nextCustomer := clock.Now().Add(10 * time.Second)
	nextExpiry := clock.Now().Add(10 * time.Second)

	for clock.Now().Before(end) {
		clock.Advance(tick)
		now := clock.Now()
		e.Advance(now)

		if !now.Before(nextAccrual) {
			e.AccrueEggs()
			nextAccrual = now.Add(e.AccrualPeriod())
		}
		if !now.Before(nextCustomer) {
			e.SweepArrivals()
			nextCustomer = now.Add(10 * time.Second)
		}
		if !now.Before(nextExpiry) {
			e.SweepExpirations()
			nextExpiry = now.Add(10 * time.Second)
		}
	}
}
