package farm

import "time"

// Balance and timing constants. Feed decay and egg laying are tuned
// independently but both derive from this block: feed drains
// proportionally to livestock per elapsed millisecond, while eggs arrive
// on a discrete flock-wide timer. The flock timer is an intentional
// approximation of per-chicken independent lay rates.
const (
	// MaxTickDelta clamps the usable elapsed time per tick. Long offline
	// gaps advance the simulation by at most this much, trading perfect
	// offline accrual for a bounded catch-up cost.
	MaxTickDelta = 60 * time.Second

	// FeedDecayDivisor scales feed consumption: each bird eats
	// elapsedMillis / FeedDecayDivisor units of feed.
	FeedDecayDivisor = 10000.0

	// LayBaseInterval is the egg timer period for a single bird; the
	// effective period is LayBaseInterval / livestock.
	LayBaseInterval = 6 * time.Second

	// RestaurantUnlockThreshold is the money level that opens the restaurant
	RestaurantUnlockThreshold = 5000.0

	// EggSellPrice and GoldenEggSellPrice are per-egg sale values
	EggSellPrice       = 2.0
	GoldenEggSellPrice = 10.0

	// ChickenPrice is the store price of one chicken
	ChickenPrice = 25.0

	// BreedingFee is the money cost of starting one breeding job
	// (on top of the golden egg it consumes)
	BreedingFee = 100.0

	// CookHirePrice adds one cook and one production slot
	CookHirePrice = 1000.0
	MaxCooks      = 5

	// CounterPrice and RestaurantPrice expand serving capacity
	CounterPrice    = 2500.0
	RestaurantPrice = 10000.0

	// KitchenUpgradeBasePrice scales with the next upgrade level
	KitchenUpgradeBasePrice = 1500.0
	MaxKitchenUpgrades      = 5
)

// Milestones is the fixed ascending list of money thresholds that fire a
// one-time celebration each.
var Milestones = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}
