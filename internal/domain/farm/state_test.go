package farm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/ledger"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewGameState_StartingFarm(t *testing.T) {
	s := farm.NewGameState(now)

	assert.InDelta(t, 100.0, s.Money, 0.001)
	assert.Equal(t, 3, s.Chickens)
	assert.InDelta(t, 50.0, s.Feed, 0.001)
	assert.Equal(t, 2, s.ProductionSlots)
	assert.Equal(t, 1, s.Cooks)
	assert.False(t, s.RestaurantUnlocked)
	assert.NotNil(t, s.Products)
	assert.NotNil(t, s.Transactions)
}

func TestHydrateDefaults_FillsOlderSaves(t *testing.T) {
	s := &farm.GameState{Money: 42, Chickens: 7}
	s.HydrateDefaults()

	assert.NotNil(t, s.Products)
	assert.NotNil(t, s.ProductionQueue)
	assert.NotNil(t, s.ActiveOrders)
	assert.Equal(t, 1, s.ProductionSlots)
	assert.Equal(t, 1, s.Cooks)
	assert.Equal(t, 1, s.AutoCollector.Level)
	assert.InDelta(t, automation.FeederDefaultThreshold, s.AutoFeeder.FeedThreshold, 0.001)
}

func TestHydrateDefaults_SeedsRestaurantsWhenUnlocked(t *testing.T) {
	s := &farm.GameState{RestaurantUnlocked: true}
	s.HydrateDefaults()

	assert.Equal(t, restaurant.DefaultRestaurants(), s.Restaurants)
}

func TestLivestock(t *testing.T) {
	s := &farm.GameState{Chickens: 3, GoldenChickens: 2}
	assert.Equal(t, 5, s.Livestock())
}

func TestCollectReadyEggs(t *testing.T) {
	s := &farm.GameState{ReadyEggs: 7, ReadyGoldenEggs: 2, EggInventory: 1}

	eggs, golden := s.CollectReadyEggs()

	assert.Equal(t, 7, eggs)
	assert.Equal(t, 2, golden)
	assert.Equal(t, 8, s.EggInventory)
	assert.Equal(t, 2, s.GoldenEggInventory)
	assert.Zero(t, s.ReadyEggs)
	assert.Zero(t, s.ReadyGoldenEggs)
}

func TestRecordTransaction_DropsInvalidEntries(t *testing.T) {
	s := farm.NewGameState(now)

	s.RecordTransaction(ledger.TransactionTypePurchase, "2 chickens", -50, now)
	s.RecordTransaction(ledger.TransactionTypePurchase, "zero is invalid", 0, now)

	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "2 chickens", s.Transactions[0].Description)
}

func TestClone_DoesNotAliasLiveState(t *testing.T) {
	s := farm.NewGameState(now)
	s.Products[recipe.Omelette] = 1
	s.RecordTransaction(ledger.TransactionTypeSale, "10 eggs", 20, now)

	c := s.Clone()
	c.Products[recipe.Omelette] = 99
	c.Transactions[0].Description = "tampered"
	c.ReachedMilestones = append(c.ReachedMilestones, 100)

	assert.Equal(t, 1, s.Products[recipe.Omelette])
	assert.Equal(t, "10 eggs", s.Transactions[0].Description)
	assert.Empty(t, s.ReachedMilestones)
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name  string
		state farm.GameState
		want  []farm.Warning
	}{
		{
			name:  "empty farm",
			state: farm.GameState{},
			want:  []farm.Warning{farm.WarningNoFeed, farm.WarningNoChickens, farm.WarningNoEggsReady, farm.WarningLowMoney},
		},
		{
			name:  "healthy farm",
			state: farm.GameState{Money: 100, Chickens: 3, Feed: 50, ReadyEggs: 2},
			want:  nil,
		},
		{
			name:  "feed running low",
			state: farm.GameState{Money: 100, Chickens: 3, Feed: 5, ReadyEggs: 1},
			want:  []farm.Warning{farm.WarningLowFeed},
		},
		{
			name:  "no feed beats low feed",
			state: farm.GameState{Money: 100, Chickens: 3, Feed: 0, ReadyEggs: 1},
			want:  []farm.Warning{farm.WarningNoFeed},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Warnings())
		})
	}
}

func TestHasMilestone(t *testing.T) {
	s := &farm.GameState{ReachedMilestones: []float64{100, 500}}
	assert.True(t, s.HasMilestone(500))
	assert.False(t, s.HasMilestone(1000))
}
