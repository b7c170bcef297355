package engine_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, state *farm.GameState) (*engine.Engine, *shared.MockClock) {
	t.Helper()
	clock := shared.NewMockClock(t0)
	if state.LastUpdate.IsZero() {
		state.LastUpdate = t0
	}
	rng := rand.New(rand.NewSource(1))
	return engine.NewEngine(state, clock, nil, nil, nil, rng), clock
}

func TestAdvance_FeedConsumption(t *testing.T) {
	state := &farm.GameState{Chickens: 3, Feed: 30, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(10 * time.Second)
	eng.Advance(clock.Now())

	// 3 birds * 10000ms / 10000 = 3 units eaten
	assert.InDelta(t, 27.0, eng.Snapshot().Feed, 0.001)
}

func TestAdvance_FeedClampsAtZero(t *testing.T) {
	state := &farm.GameState{Chickens: 50, Feed: 1, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(30 * time.Second)
	eng.Advance(clock.Now())

	assert.Equal(t, 0.0, eng.Snapshot().Feed)
}

func TestAdvance_ClampsLargeGaps(t *testing.T) {
	state := &farm.GameState{Chickens: 3, Feed: 100, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	// Laptop slept for an hour; only 60s of it counts.
	clock.Advance(time.Hour)
	eng.Advance(clock.Now())

	// 3 birds * 60000ms / 10000 = 18 units
	assert.InDelta(t, 82.0, eng.Snapshot().Feed, 0.001)
	assert.Equal(t, clock.Now(), eng.Snapshot().LastUpdate)
}

func TestAdvance_Idempotent(t *testing.T) {
	state := &farm.GameState{Money: 600, Chickens: 3, Feed: 30, ReadyEggs: 5, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(5 * time.Second)
	eng.Advance(clock.Now())
	first := eng.Snapshot()

	eng.Advance(clock.Now())
	second := eng.Snapshot()

	assert.Equal(t, first, second)
}

func TestAdvance_NeverGoesNegative(t *testing.T) {
	state := &farm.GameState{Chickens: 100, GoldenChickens: 100, Feed: 0.5, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	for i := 0; i < 50; i++ {
		clock.Advance(time.Second)
		eng.Advance(clock.Now())
	}

	s := eng.Snapshot()
	assert.GreaterOrEqual(t, s.Feed, 0.0)
	assert.GreaterOrEqual(t, s.EggInventory, 0)
	assert.GreaterOrEqual(t, s.ReadyEggs, 0)
	assert.LessOrEqual(t, len(s.ProductionQueue), s.ProductionSlots)
}

func TestProduction_CompletesOnDeadline(t *testing.T) {
	state := &farm.GameState{EggInventory: 10, ProductionSlots: 2, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	require.NoError(t, eng.StartProduction(recipe.Omelette))
	assert.Len(t, eng.Snapshot().ProductionQueue, 1)
	assert.Equal(t, 8, eng.Snapshot().EggInventory) // cost deducted at admission

	// One tick before the deadline: still cooking.
	clock.Advance(30*time.Second - time.Millisecond)
	eng.Advance(clock.Now())
	assert.Len(t, eng.Snapshot().ProductionQueue, 1)

	clock.Advance(time.Millisecond)
	eng.Advance(clock.Now())
	s := eng.Snapshot()
	assert.Empty(t, s.ProductionQueue)
	assert.Equal(t, 1, s.Products[recipe.Omelette])
}

func TestProduction_KitchenUpgradeSpeedsJobs(t *testing.T) {
	state := &farm.GameState{EggInventory: 10, ProductionSlots: 2, KitchenUpgrades: 1, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	require.NoError(t, eng.StartProduction(recipe.Omelette))

	// 30s / 1.2 = 25s
	clock.Advance(25 * time.Second)
	eng.Advance(clock.Now())
	assert.Equal(t, 1, eng.Snapshot().Products[recipe.Omelette])
}

func TestProduction_DeclinedWhenSlotsFull(t *testing.T) {
	state := &farm.GameState{EggInventory: 100, ProductionSlots: 1, LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	require.NoError(t, eng.StartProduction(recipe.Omelette))
	err := eng.StartProduction(recipe.Omelette)

	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedNoCapacity, declined.Reason)
	assert.Len(t, eng.Snapshot().ProductionQueue, 1)
}

func TestProduction_DeclinedWhenIngredientsMissing(t *testing.T) {
	state := &farm.GameState{EggInventory: 1, ProductionSlots: 2, LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	err := eng.StartProduction(recipe.Omelette)

	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedInsufficientResources, declined.Reason)
	assert.Equal(t, 1, eng.Snapshot().EggInventory)
}

func TestBreeding_HatchesGoldenChicken(t *testing.T) {
	state := &farm.GameState{Money: 500, GoldenEggInventory: 1, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	require.NoError(t, eng.StartBreeding())
	s := eng.Snapshot()
	assert.Equal(t, 0, s.GoldenEggInventory)
	assert.InDelta(t, 400.0, s.Money, 0.001)
	assert.Len(t, s.BreedingQueue, 1)

	clock.Advance(time.Minute)
	eng.Advance(clock.Now())
	s = eng.Snapshot()
	assert.Empty(t, s.BreedingQueue)
	assert.Equal(t, 1, s.GoldenChickens)
}

func TestSellProducts_AllOrNothing(t *testing.T) {
	state := &farm.GameState{LastUpdate: t0}
	state.HydrateDefaults()
	state.Products[recipe.Omelette] = 2
	state.Products[recipe.Pancakes] = 1
	eng, _ := newTestEngine(t, state)

	total, err := eng.SellProducts()
	require.NoError(t, err)
	assert.InDelta(t, 55.0, total, 0.001) // 2*15 + 25

	s := eng.Snapshot()
	assert.Empty(t, s.Products)
	assert.InDelta(t, 55.0, s.Money, 0.001)
}

func TestSellProducts_DeclinedWhenEmpty(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{LastUpdate: t0})

	_, err := eng.SellProducts()
	_, ok := shared.IsDeclined(err)
	assert.True(t, ok)
}

func TestCollectAndSellEggs(t *testing.T) {
	state := &farm.GameState{ReadyEggs: 10, ReadyGoldenEggs: 2, LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	eggs, golden := eng.CollectEggs()
	assert.Equal(t, 10, eggs)
	assert.Equal(t, 2, golden)

	total, err := eng.SellEggs()
	require.NoError(t, err)
	assert.InDelta(t, 40.0, total, 0.001) // 10*2 + 2*10

	s := eng.Snapshot()
	assert.Zero(t, s.EggInventory)
	assert.Zero(t, s.GoldenEggInventory)
}

func TestCollectEggs_ZeroIsNoOp(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{LastUpdate: t0})

	eggs, golden := eng.CollectEggs()
	assert.Zero(t, eggs)
	assert.Zero(t, golden)
}

func TestAutoCollector_CollectsAtThreshold(t *testing.T) {
	state := &farm.GameState{
		ReadyEggs:     15,
		AutoCollector: automation.AutoCollector{IsActive: true, RemainingTime: time.Minute, Level: 1},
		LastUpdate:    t0,
	}
	eng, clock := newTestEngine(t, state)

	clock.Advance(100 * time.Millisecond)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	assert.Equal(t, 15, s.EggInventory)
	assert.Zero(t, s.ReadyEggs)
}

func TestAutoCollector_BelowThresholdDoesNothing(t *testing.T) {
	state := &farm.GameState{
		ReadyEggs:     14,
		AutoCollector: automation.AutoCollector{IsActive: true, RemainingTime: time.Minute, Level: 1},
		LastUpdate:    t0,
	}
	eng, clock := newTestEngine(t, state)

	clock.Advance(100 * time.Millisecond)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	assert.Zero(t, s.EggInventory)
	assert.Equal(t, 14, s.ReadyEggs)
}

func TestAutoCollector_ExpiresWhenBudgetSpent(t *testing.T) {
	state := &farm.GameState{
		AutoCollector: automation.AutoCollector{IsActive: true, RemainingTime: 100 * time.Millisecond, Level: 1},
		LastUpdate:    t0,
	}
	eng, clock := newTestEngine(t, state)

	clock.Advance(100 * time.Millisecond)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	assert.False(t, s.AutoCollector.IsActive)
	assert.Equal(t, time.Duration(0), s.AutoCollector.RemainingTime)
}

func TestAutoFeeder_BuysWhenLow(t *testing.T) {
	state := &farm.GameState{
		Money:      1000,
		Chickens:   3,
		Feed:       5,
		AutoFeeder: automation.AutoFeeder{Owned: true, IsActive: true, FeedThreshold: 20},
		LastUpdate: t0,
	}
	eng, clock := newTestEngine(t, state)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	// Small farm, not an emergency: the small pack (+50 units, -$50).
	assert.InDelta(t, 950.0, s.Money, 0.001)
	assert.Greater(t, s.Feed, 50.0)
	assert.Equal(t, clock.Now(), s.AutoFeeder.LastPurchaseTime)
}

func TestAutoFeeder_RespectsCooldown(t *testing.T) {
	state := &farm.GameState{
		Money:      1000,
		Chickens:   100, // heavy eaters keep feed below threshold
		Feed:       5,
		AutoFeeder: automation.AutoFeeder{Owned: true, IsActive: true, FeedThreshold: 200},
		LastUpdate: t0,
	}
	eng, clock := newTestEngine(t, state)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())
	moneyAfterFirst := eng.Snapshot().Money

	// 5s later: still below threshold but inside the 10s cooldown.
	clock.Advance(5 * time.Second)
	eng.Advance(clock.Now())
	assert.Equal(t, moneyAfterFirst, eng.Snapshot().Money)

	clock.Advance(6 * time.Second)
	eng.Advance(clock.Now())
	assert.Less(t, eng.Snapshot().Money, moneyAfterFirst)
}

func TestMilestones_FireOnce(t *testing.T) {
	state := &farm.GameState{Money: 600, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())
	assert.ElementsMatch(t, []float64{100, 500}, eng.Snapshot().ReachedMilestones)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())
	assert.ElementsMatch(t, []float64{100, 500}, eng.Snapshot().ReachedMilestones)
}

func TestMilestones_NeverShrink(t *testing.T) {
	state := &farm.GameState{Money: 1500, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())
	reached := len(eng.Snapshot().ReachedMilestones)

	for i := 0; i < 10; i++ {
		clock.Advance(time.Second)
		eng.Advance(clock.Now())
		assert.GreaterOrEqual(t, len(eng.Snapshot().ReachedMilestones), reached)
	}
}

func TestRestaurantUnlock_ExactlyOnce(t *testing.T) {
	state := &farm.GameState{Money: 5000, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	clock.Advance(time.Second)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	require.True(t, s.RestaurantUnlocked)
	assert.Equal(t, 1, s.Restaurants.Count)
	assert.Equal(t, 3, s.Restaurants.Counters.Count)

	// Idempotent on later ticks, and one-way even if money drops.
	clock.Advance(time.Second)
	eng.Advance(clock.Now())
	assert.True(t, eng.Snapshot().RestaurantUnlocked)
}

func TestAccrueEggs(t *testing.T) {
	state := &farm.GameState{Chickens: 2, GoldenChickens: 1, Feed: 10, LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	eng.AccrueEggs()

	s := eng.Snapshot()
	assert.Equal(t, 1, s.ReadyEggs)
	assert.Equal(t, 1, s.ReadyGoldenEggs)
}

func TestAccrueEggs_SuppressedWithoutFeed(t *testing.T) {
	state := &farm.GameState{Chickens: 2, Feed: 0, LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	eng.AccrueEggs()

	assert.Zero(t, eng.Snapshot().ReadyEggs)
}

func TestAccrualPeriod_ScalesWithFlock(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Chickens: 3, LastUpdate: t0})
	assert.Equal(t, 2*time.Second, eng.AccrualPeriod())

	empty, _ := newTestEngine(t, &farm.GameState{LastUpdate: t0})
	assert.Equal(t, 6*time.Second, empty.AccrualPeriod())
}

func TestPause_FreezesTickWithoutReplayingTime(t *testing.T) {
	state := &farm.GameState{Chickens: 3, Feed: 30, LastUpdate: t0}
	eng, clock := newTestEngine(t, state)

	eng.Pause()
	clock.Advance(30 * time.Second)
	eng.Advance(clock.Now())

	s := eng.Snapshot()
	assert.InDelta(t, 30.0, s.Feed, 0.001) // nothing consumed
	assert.Equal(t, clock.Now(), s.LastUpdate)

	eng.Resume()
	clock.Advance(10 * time.Second)
	eng.Advance(clock.Now())
	// Only the post-resume 10s count.
	assert.InDelta(t, 27.0, eng.Snapshot().Feed, 0.001)
}

func TestPause_SuppressesAccrualAndArrivals(t *testing.T) {
	state := &farm.GameState{Chickens: 3, Feed: 30, Money: 6000, RestaurantUnlocked: true, LastUpdate: t0}
	state.Restaurants = restaurant.DefaultRestaurants()
	eng, _ := newTestEngine(t, state)

	eng.Pause()
	eng.AccrueEggs()
	eng.SweepArrivals()

	s := eng.Snapshot()
	assert.Zero(t, s.ReadyEggs)
	assert.Empty(t, s.ActiveOrders)
}

func TestPurchases_DeclinedWithoutFunds(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 20, LastUpdate: t0})

	for name, action := range map[string]func() error{
		"feed":      func() error { return eng.BuyFeed(recipe.PackSmall) },
		"chicken":   func() error { return eng.BuyChickens(1) },
		"collector": func() error { return eng.PurchaseAutoCollector() },
		"feeder":    func() error { return eng.PurchaseAutoFeeder() },
		"cook":      func() error { return eng.HireCook() },
		"kitchen":   func() error { return eng.UpgradeKitchen() },
	} {
		err := action()
		declined, ok := shared.IsDeclined(err)
		require.True(t, ok, "%s should be declined", name)
		assert.Equal(t, shared.DeclinedInsufficientFunds, declined.Reason, name)
	}
	assert.InDelta(t, 20.0, eng.Snapshot().Money, 0.001)
}

func TestBuyFeedAndChickens(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 200, LastUpdate: t0})

	require.NoError(t, eng.BuyFeed(recipe.PackSmall))
	require.NoError(t, eng.BuyChickens(2))

	s := eng.Snapshot()
	assert.InDelta(t, 100.0, s.Money, 0.001) // 200 - 50 - 2*25
	assert.InDelta(t, 50.0, s.Feed, 0.001)
	assert.Equal(t, 2, s.Chickens)
	assert.Len(t, s.Transactions, 2)
}

func TestHireCook_GrowsProductionSlots(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 2000, Cooks: 1, ProductionSlots: 2, LastUpdate: t0})

	require.NoError(t, eng.HireCook())

	s := eng.Snapshot()
	assert.Equal(t, 2, s.Cooks)
	assert.Equal(t, 3, s.ProductionSlots)
}
