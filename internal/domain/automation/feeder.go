package automation

import "time"

const (
	// FeederPrice is the one-time purchase cost of the auto-feeder
	FeederPrice = 2000.0

	// FeederDefaultThreshold is the feed level below which the feeder buys
	FeederDefaultThreshold = 20.0

	// FeederPurchaseCooldown is the minimum gap between automatic purchases
	FeederPurchaseCooldown = 10 * time.Second

	// FeederNotifyInterval rate-limits purchase toasts
	FeederNotifyInterval = 5 * time.Second
)

// AutoFeeder buys feed automatically when stock runs low. Unlike the
// collector it is bought once and never expires; the player toggles it.
type AutoFeeder struct {
	Owned            bool      `json:"owned"`
	IsActive         bool      `json:"isActive"`
	FeedThreshold    float64   `json:"feedThreshold"`
	LastPurchaseTime time.Time `json:"lastPurchaseTime"`
	LastNotification time.Time `json:"lastNotification"`
}

// NewAutoFeeder returns a freshly purchased feeder, active with the
// default threshold.
func NewAutoFeeder() AutoFeeder {
	return AutoFeeder{
		Owned:         true,
		IsActive:      true,
		FeedThreshold: FeederDefaultThreshold,
	}
}

// WantsToBuy reports whether the feeder should attempt a purchase now:
// owned, switched on, feed below threshold and past the purchase cooldown.
func (f AutoFeeder) WantsToBuy(feed float64, now time.Time) bool {
	if !f.Owned || !f.IsActive {
		return false
	}
	if feed >= f.FeedThreshold {
		return false
	}
	return now.Sub(f.LastPurchaseTime) >= FeederPurchaseCooldown
}

// RecordPurchase stamps the purchase cooldown.
func (f *AutoFeeder) RecordPurchase(now time.Time) {
	f.LastPurchaseTime = now
}

// Toggle flips the feeder on or off. Ownership never reverts.
func (f *AutoFeeder) Toggle() {
	if f.Owned {
		f.IsActive = !f.IsActive
	}
}

// ShouldNotify reports whether enough real time has passed since the last
// purchase toast, and records the notification time when it has.
func (f *AutoFeeder) ShouldNotify(now time.Time) bool {
	if now.Sub(f.LastNotification) < FeederNotifyInterval {
		return false
	}
	f.LastNotification = now
	return true
}
