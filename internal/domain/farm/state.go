package farm

import (
	"time"

	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/ledger"
	"github.com/featherlane/henhouse-go/internal/domain/production"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
)

// GameState is the single root aggregate of the simulation. It is a flat
// JSON-serializable document: the persistence adapter stores it verbatim
// and the engine is its only writer.
type GameState struct {
	Money              float64                  `json:"money"`
	Chickens           int                      `json:"chickens"`
	GoldenChickens     int                      `json:"goldenChickens"`
	Feed               float64                  `json:"feed"`
	EggInventory       int                      `json:"eggInventory"`
	GoldenEggInventory int                      `json:"goldenEggInventory"`
	ReadyEggs          int                      `json:"readyEggs"`
	ReadyGoldenEggs    int                      `json:"readyGoldenEggs"`
	Products           map[recipe.ID]int        `json:"products"`
	ProductionQueue    []production.Job         `json:"productionQueue"`
	BreedingQueue      []production.BreedingJob `json:"breedingQueue"`
	ProductionSlots    int                      `json:"productionSlots"`
	Cooks              int                      `json:"cooks"`
	KitchenUpgrades    int                      `json:"kitchenUpgrades"`
	AutoCollector      automation.AutoCollector `json:"autoCollector"`
	AutoFeeder         automation.AutoFeeder    `json:"autoFeeder"`
	Restaurants        restaurant.Restaurants   `json:"restaurants"`
	ActiveOrders       []restaurant.Order       `json:"activeOrders"`
	RestaurantUnlocked bool                     `json:"restaurantUnlocked"`
	CompletedOrders    int                      `json:"completedOrders"`
	Transactions       []ledger.Transaction     `json:"transactions"`
	ReachedMilestones  []float64                `json:"reachedMilestones"`
	LastUpdate         time.Time                `json:"lastUpdate"`
}

// NewGameState returns the starting state of a fresh farm.
func NewGameState(now time.Time) *GameState {
	s := &GameState{
		Money:           100,
		Chickens:        3,
		Feed:            50,
		ProductionSlots: 2,
		Cooks:           1,
		LastUpdate:      now,
	}
	s.HydrateDefaults()
	return s
}

// HydrateDefaults fills any missing substructure with its default shape.
// It runs once when a save is loaded so the engine can assume a fully
// populated document; older saves simply gain the fields they lack.
func (s *GameState) HydrateDefaults() {
	if s.Products == nil {
		s.Products = make(map[recipe.ID]int)
	}
	if s.ProductionQueue == nil {
		s.ProductionQueue = []production.Job{}
	}
	if s.BreedingQueue == nil {
		s.BreedingQueue = []production.BreedingJob{}
	}
	if s.ActiveOrders == nil {
		s.ActiveOrders = []restaurant.Order{}
	}
	if s.Transactions == nil {
		s.Transactions = []ledger.Transaction{}
	}
	if s.ReachedMilestones == nil {
		s.ReachedMilestones = []float64{}
	}
	if s.ProductionSlots < 1 {
		s.ProductionSlots = 1
	}
	if s.Cooks < 1 {
		s.Cooks = 1
	}
	if s.AutoCollector.Level < 1 {
		s.AutoCollector.Level = 1
	}
	if s.AutoFeeder.FeedThreshold <= 0 {
		s.AutoFeeder.FeedThreshold = automation.FeederDefaultThreshold
	}
	if s.RestaurantUnlocked && s.Restaurants.Count == 0 {
		s.Restaurants = restaurant.DefaultRestaurants()
	}
}

// Livestock is the total bird count.
func (s *GameState) Livestock() int {
	return s.Chickens + s.GoldenChickens
}

// CanAfford reports whether the player has at least amount money.
func (s *GameState) CanAfford(amount float64) bool {
	return s.Money >= amount
}

// CollectReadyEggs moves all ready eggs into sellable inventory,
// returning how many of each were moved.
func (s *GameState) CollectReadyEggs() (eggs, golden int) {
	eggs, golden = s.ReadyEggs, s.ReadyGoldenEggs
	s.EggInventory += eggs
	s.GoldenEggInventory += golden
	s.ReadyEggs = 0
	s.ReadyGoldenEggs = 0
	return eggs, golden
}

// HasMilestone reports whether a celebration already fired for the
// given threshold.
func (s *GameState) HasMilestone(threshold float64) bool {
	for _, m := range s.ReachedMilestones {
		if m == threshold {
			return true
		}
	}
	return false
}

// RecordTransaction appends an audit entry to the bounded log. Invalid
// entries are dropped rather than interrupting the game.
func (s *GameState) RecordTransaction(txType ledger.TransactionType, description string, amount float64, now time.Time) {
	tx, err := ledger.NewTransaction(txType, description, amount, now)
	if err != nil {
		return
	}
	s.Transactions = ledger.Append(s.Transactions, tx)
}

// Clone deep-copies the state. Used by queries so readers never alias the
// engine's live document.
func (s *GameState) Clone() *GameState {
	out := *s
	out.Products = make(map[recipe.ID]int, len(s.Products))
	for k, v := range s.Products {
		out.Products[k] = v
	}
	out.ProductionQueue = append([]production.Job(nil), s.ProductionQueue...)
	out.BreedingQueue = append([]production.BreedingJob(nil), s.BreedingQueue...)
	out.ActiveOrders = append([]restaurant.Order(nil), s.ActiveOrders...)
	out.Transactions = append([]ledger.Transaction(nil), s.Transactions...)
	out.ReachedMilestones = append([]float64(nil), s.ReachedMilestones...)
	return &out
}
