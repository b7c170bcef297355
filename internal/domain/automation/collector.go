package automation

import "time"

const (
	// CollectorPrice is the one-time purchase cost of the auto-collector
	CollectorPrice = 500.0

	// CollectorDuration is the time budget granted per purchase or top-up
	CollectorDuration = 60 * time.Second

	// CollectorTickDrain is how much remaining time one engine tick consumes.
	// Fixed granularity: the drain does not scale with the tick's real delta.
	CollectorTickDrain = 100 * time.Millisecond

	// CollectorNotifyInterval rate-limits collection toasts
	CollectorNotifyInterval = 3 * time.Second
)

// AutoCollector gathers ready eggs into inventory once enough have piled
// up. It burns through a purchased time budget and deactivates when the
// budget runs out.
type AutoCollector struct {
	IsActive         bool          `json:"isActive"`
	RemainingTime    time.Duration `json:"remainingTime"`
	Level            int           `json:"level"`
	LastNotification time.Time     `json:"lastNotification"`
}

// NewAutoCollector returns a freshly purchased, active collector.
func NewAutoCollector() AutoCollector {
	return AutoCollector{
		IsActive:      true,
		RemainingTime: CollectorDuration,
		Level:         1,
	}
}

// Threshold is the ready-egg count that triggers a collection at the
// collector's level. It decreases with level and floors at 2.
func (c AutoCollector) Threshold() int {
	switch c.Level {
	case 1:
		return 15
	case 2:
		return 12
	case 3:
		return 9
	case 4:
		return 6
	case 5:
		return 4
	default:
		t := 15 - (c.Level-1)*2
		if t < 2 {
			return 2
		}
		return t
	}
}

// Drain consumes one tick's worth of the time budget, deactivating the
// collector when it is spent. Returns true if the collector just expired.
func (c *AutoCollector) Drain() bool {
	if !c.IsActive {
		return false
	}
	c.RemainingTime -= CollectorTickDrain
	if c.RemainingTime <= 0 {
		c.RemainingTime = 0
		c.IsActive = false
		return true
	}
	return false
}

// UpgradeCost is the price of the next top-up or level-up.
func (c AutoCollector) UpgradeCost() float64 {
	return 1000 * float64(c.Level)
}

// TopUp extends the active collector's time budget.
func (c *AutoCollector) TopUp() {
	c.RemainingTime += CollectorDuration
}

// LevelUp raises the collector's level, lowering its trigger threshold.
func (c *AutoCollector) LevelUp() {
	c.Level++
}

// ShouldNotify reports whether enough real time has passed since the last
// collection toast, and records the notification time when it has.
func (c *AutoCollector) ShouldNotify(now time.Time) bool {
	if now.Sub(c.LastNotification) < CollectorNotifyInterval {
		return false
	}
	c.LastNotification = now
	return true
}
