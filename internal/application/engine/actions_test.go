package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

func TestPurchaseAutoCollector(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 600, LastUpdate: t0})

	require.NoError(t, eng.PurchaseAutoCollector())

	s := eng.Snapshot()
	assert.True(t, s.AutoCollector.IsActive)
	assert.Equal(t, automation.CollectorDuration, s.AutoCollector.RemainingTime)
	assert.Equal(t, 1, s.AutoCollector.Level)
	assert.InDelta(t, 100.0, s.Money, 0.001)

	// Buying while one is running is declined.
	err := eng.PurchaseAutoCollector()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestPurchaseAutoCollector_ResetsLevelAfterExpiry(t *testing.T) {
	state := &farm.GameState{
		Money:         1000,
		AutoCollector: automation.AutoCollector{IsActive: false, Level: 3},
		LastUpdate:    t0,
	}
	eng, _ := newTestEngine(t, state)

	require.NoError(t, eng.PurchaseAutoCollector())

	// A fresh purchase is a fresh unit: levels bought into the expired
	// one do not carry over.
	s := eng.Snapshot()
	assert.True(t, s.AutoCollector.IsActive)
	assert.Equal(t, 1, s.AutoCollector.Level)
	assert.Equal(t, automation.CollectorDuration, s.AutoCollector.RemainingTime)
}

func TestTopUpAndLevelUpAutoCollector(t *testing.T) {
	state := &farm.GameState{
		Money:         5000,
		AutoCollector: automation.AutoCollector{IsActive: true, RemainingTime: 30 * time.Second, Level: 1},
		LastUpdate:    t0,
	}
	eng, _ := newTestEngine(t, state)

	require.NoError(t, eng.TopUpAutoCollector())
	s := eng.Snapshot()
	assert.Equal(t, 30*time.Second+automation.CollectorDuration, s.AutoCollector.RemainingTime)
	assert.InDelta(t, 4000.0, s.Money, 0.001) // level 1 costs $1000

	require.NoError(t, eng.LevelUpAutoCollector())
	s = eng.Snapshot()
	assert.Equal(t, 2, s.AutoCollector.Level)
	assert.InDelta(t, 3000.0, s.Money, 0.001)

	// The next upgrade now costs $2000.
	require.NoError(t, eng.LevelUpAutoCollector())
	assert.InDelta(t, 1000.0, eng.Snapshot().Money, 0.001)
}

func TestTopUp_DeclinedWhileExpired(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 5000, LastUpdate: t0})

	err := eng.TopUpAutoCollector()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestPurchaseAutoFeeder_OnlyOnce(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 5000, LastUpdate: t0})

	require.NoError(t, eng.PurchaseAutoFeeder())
	s := eng.Snapshot()
	assert.True(t, s.AutoFeeder.Owned)
	assert.True(t, s.AutoFeeder.IsActive)
	assert.InDelta(t, 3000.0, s.Money, 0.001)

	err := eng.PurchaseAutoFeeder()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestSetFeedThreshold(t *testing.T) {
	state := &farm.GameState{AutoFeeder: automation.NewAutoFeeder(), LastUpdate: t0}
	eng, _ := newTestEngine(t, state)

	require.NoError(t, eng.SetFeedThreshold(40))
	assert.InDelta(t, 40.0, eng.Snapshot().AutoFeeder.FeedThreshold, 0.001)

	err := eng.SetFeedThreshold(-1)
	_, ok := shared.IsDeclined(err)
	assert.True(t, ok)
}

func TestSetFeedThreshold_RequiresOwnership(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{LastUpdate: t0})

	err := eng.SetFeedThreshold(40)
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestStartBreeding_RequiresGoldenEgg(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 500, LastUpdate: t0})

	err := eng.StartBreeding()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedInsufficientResources, declined.Reason)
}

func TestHireCook_CapsAtMaxCooks(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 100000, Cooks: farm.MaxCooks, LastUpdate: t0})

	err := eng.HireCook()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedNoCapacity, declined.Reason)
}

func TestUpgradeKitchen_CostRisesPerLevel(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 10000, LastUpdate: t0})

	require.NoError(t, eng.UpgradeKitchen())
	assert.InDelta(t, 8500.0, eng.Snapshot().Money, 0.001) // level 1: $1500

	require.NoError(t, eng.UpgradeKitchen())
	assert.InDelta(t, 5500.0, eng.Snapshot().Money, 0.001) // level 2: $3000
	assert.Equal(t, 2, eng.Snapshot().KitchenUpgrades)
}

func TestUpgradeKitchen_CapsAtMaxLevel(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 100000, KitchenUpgrades: farm.MaxKitchenUpgrades, LastUpdate: t0})

	err := eng.UpgradeKitchen()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedNoCapacity, declined.Reason)
}

func TestBuyCounterAndRestaurant(t *testing.T) {
	state := &farm.GameState{
		Money:              50000,
		RestaurantUnlocked: true,
		Restaurants:        restaurant.DefaultRestaurants(),
		LastUpdate:         t0,
	}
	eng, _ := newTestEngine(t, state)

	require.NoError(t, eng.BuyCounter())
	s := eng.Snapshot()
	assert.Equal(t, 4, s.Restaurants.Counters.Count)
	assert.InDelta(t, 47500.0, s.Money, 0.001)

	require.NoError(t, eng.BuyRestaurant())
	s = eng.Snapshot()
	assert.Equal(t, 2, s.Restaurants.Count)
	assert.InDelta(t, 37500.0, s.Money, 0.001)
	assert.Equal(t, 8, s.Restaurants.Capacity())
}

func TestBuyCounter_DeclinedWhileLocked(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 50000, LastUpdate: t0})

	err := eng.BuyCounter()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestBuyCounter_CapsAtMaxCount(t *testing.T) {
	state := &farm.GameState{
		Money:              50000,
		RestaurantUnlocked: true,
		Restaurants: restaurant.Restaurants{
			Count:    1,
			MaxCount: 3,
			Counters: restaurant.Counters{Count: 5, MaxCount: 5},
		},
		LastUpdate: t0,
	}
	eng, _ := newTestEngine(t, state)

	err := eng.BuyCounter()
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedNoCapacity, declined.Reason)
}

func TestBuyChickens_RejectsNonPositiveCount(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 500, LastUpdate: t0})

	err := eng.BuyChickens(0)
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}

func TestBuyFeed_UnknownPack(t *testing.T) {
	eng, _ := newTestEngine(t, &farm.GameState{Money: 500, LastUpdate: t0})

	err := eng.BuyFeed("jumbo")
	declined, ok := shared.IsDeclined(err)
	require.True(t, ok)
	assert.Equal(t, shared.DeclinedUnavailable, declined.Reason)
}
