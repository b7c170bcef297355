package engine

import (
	"fmt"

	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/ledger"
	"github.com/featherlane/henhouse-go/internal/domain/production"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

// Player actions. Each takes the engine mutex, validates against the
// live state, and either mutates it or returns a shared.DeclinedError
// leaving the state untouched. Declines are signals, not failures.

// CollectEggs moves all ready eggs into sellable inventory. Collecting
// zero eggs is a valid no-op.
func (e *Engine) CollectEggs() (eggs, golden int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	eggs, golden = e.state.CollectReadyEggs()
	if eggs+golden > 0 {
		e.sounds.PlayEvent(SoundClick)
	}
	return eggs, golden
}

// SellEggs sells the entire egg inventory at fixed per-egg prices.
func (e *Engine) SellEggs() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	eggs, golden := e.state.EggInventory, e.state.GoldenEggInventory
	if eggs+golden == 0 {
		return 0, shared.Declined(shared.DeclinedInsufficientResources, "no eggs in inventory")
	}
	total := float64(eggs)*farm.EggSellPrice + float64(golden)*farm.GoldenEggSellPrice
	e.state.EggInventory = 0
	e.state.GoldenEggInventory = 0
	e.state.Money += total
	e.state.RecordTransaction(ledger.TransactionTypeSale,
		fmt.Sprintf("Sold %d eggs and %d golden eggs", eggs, golden), total, e.clock.Now())
	e.sounds.PlayEvent(SoundSuccess)
	return total, nil
}

// BuyChickens purchases count chickens at the store price.
func (e *Engine) BuyChickens(count int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if count < 1 {
		return shared.Declined(shared.DeclinedUnavailable, "count must be at least 1")
	}
	cost := farm.ChickenPrice * float64(count)
	if !e.state.CanAfford(cost) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "need $%.0f for %d chickens", cost, count)
	}
	e.state.Money -= cost
	e.state.Chickens += count
	e.state.RecordTransaction(ledger.TransactionTypePurchase,
		fmt.Sprintf("Bought %d chickens", count), -cost, e.clock.Now())
	return nil
}

// BuyFeed purchases one feed pack of the given size.
func (e *Engine) BuyFeed(size recipe.PackSize) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pack, ok := recipe.FeedPackBySize(size)
	if !ok {
		return shared.Declined(shared.DeclinedUnavailable, "unknown feed pack %q", size)
	}
	if !e.state.CanAfford(pack.Price) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "need $%.0f for the %s pack", pack.Price, size)
	}
	e.state.Money -= pack.Price
	e.state.Feed += pack.Units
	e.state.RecordTransaction(ledger.TransactionTypePurchase,
		fmt.Sprintf("Bought a %s feed pack", size), -pack.Price, e.clock.Now())
	return nil
}

// StartProduction admits a cooking job for recipeID. Costs are deducted
// at admission so a running job can never fail later.
func (e *Engine) StartProduction(recipeID recipe.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := recipe.ByID(recipeID)
	if !ok {
		return shared.Declined(shared.DeclinedUnavailable, "unknown recipe %q", recipeID)
	}
	if len(e.state.ProductionQueue) >= e.state.ProductionSlots {
		return shared.Declined(shared.DeclinedNoCapacity, "all %d production slots are busy", e.state.ProductionSlots)
	}
	if e.state.EggInventory < r.EggCost ||
		e.state.GoldenEggInventory < r.GoldenEggCost ||
		e.state.Chickens < r.ChickenCost {
		return shared.Declined(shared.DeclinedInsufficientResources, "not enough ingredients for %s", r.Name)
	}
	e.state.EggInventory -= r.EggCost
	e.state.GoldenEggInventory -= r.GoldenEggCost
	e.state.Chickens -= r.ChickenCost
	e.state.ProductionQueue = append(e.state.ProductionQueue,
		production.NewJob(r, e.state.KitchenUpgrades, e.clock.Now()))
	e.sounds.PlayEvent(SoundClick)
	return nil
}

// StartBreeding consumes one golden egg plus the breeding fee and queues
// a job that hatches a golden chicken.
func (e *Engine) StartBreeding() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.GoldenEggInventory < 1 {
		return shared.Declined(shared.DeclinedInsufficientResources, "breeding needs a golden egg")
	}
	if !e.state.CanAfford(farm.BreedingFee) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "breeding costs $%.0f", farm.BreedingFee)
	}
	e.state.GoldenEggInventory--
	e.state.Money -= farm.BreedingFee
	e.state.BreedingQueue = append(e.state.BreedingQueue, production.NewBreedingJob(e.clock.Now()))
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Started breeding", -farm.BreedingFee, e.clock.Now())
	return nil
}

// SellProducts drains the entire product stock in one atomic sale.
// Partial sells are not supported.
func (e *Engine) SellProducts() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	var count int
	for id, qty := range e.state.Products {
		if qty <= 0 {
			continue
		}
		if r, ok := recipe.ByID(id); ok {
			total += float64(qty) * r.SellPrice
			count += qty
		}
	}
	if count == 0 {
		return 0, shared.Declined(shared.DeclinedInsufficientResources, "no products to sell")
	}
	e.state.Products = make(map[recipe.ID]int)
	e.state.Money += total
	e.state.RecordTransaction(ledger.TransactionTypeSale,
		fmt.Sprintf("Sold %d products", count), total, e.clock.Now())
	e.sounds.PlayEvent(SoundSuccess)
	return total, nil
}

// PurchaseAutoCollector buys the collector, starting it active at level 1.
func (e *Engine) PurchaseAutoCollector() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.AutoCollector.IsActive {
		return shared.Declined(shared.DeclinedUnavailable, "auto-collector is already running")
	}
	if !e.state.CanAfford(automation.CollectorPrice) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "auto-collector costs $%.0f", automation.CollectorPrice)
	}
	e.state.Money -= automation.CollectorPrice
	e.state.AutoCollector = automation.NewAutoCollector()
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Bought auto-collector", -automation.CollectorPrice, e.clock.Now())
	return nil
}

// TopUpAutoCollector extends the active collector's time budget.
func (e *Engine) TopUpAutoCollector() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := &e.state.AutoCollector
	if !c.IsActive {
		return shared.Declined(shared.DeclinedUnavailable, "auto-collector is not running")
	}
	cost := c.UpgradeCost()
	if !e.state.CanAfford(cost) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "top-up costs $%.0f", cost)
	}
	e.state.Money -= cost
	c.TopUp()
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Topped up auto-collector", -cost, e.clock.Now())
	return nil
}

// LevelUpAutoCollector raises the collector's level, lowering its
// trigger threshold.
func (e *Engine) LevelUpAutoCollector() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := &e.state.AutoCollector
	if !c.IsActive {
		return shared.Declined(shared.DeclinedUnavailable, "auto-collector is not running")
	}
	cost := c.UpgradeCost()
	if !e.state.CanAfford(cost) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "level-up costs $%.0f", cost)
	}
	e.state.Money -= cost
	c.LevelUp()
	e.state.RecordTransaction(ledger.TransactionTypePurchase,
		fmt.Sprintf("Auto-collector leveled up to %d", c.Level), -cost, e.clock.Now())
	return nil
}

// PurchaseAutoFeeder buys the feeder once; it never expires.
func (e *Engine) PurchaseAutoFeeder() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.AutoFeeder.Owned {
		return shared.Declined(shared.DeclinedUnavailable, "auto-feeder is already owned")
	}
	if !e.state.CanAfford(automation.FeederPrice) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "auto-feeder costs $%.0f", automation.FeederPrice)
	}
	e.state.Money -= automation.FeederPrice
	e.state.AutoFeeder = automation.NewAutoFeeder()
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Bought auto-feeder", -automation.FeederPrice, e.clock.Now())
	return nil
}

// ToggleAutoFeeder switches the owned feeder on or off.
func (e *Engine) ToggleAutoFeeder() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.AutoFeeder.Owned {
		return shared.Declined(shared.DeclinedUnavailable, "auto-feeder is not owned")
	}
	e.state.AutoFeeder.Toggle()
	return nil
}

// SetFeedThreshold adjusts the feed level that triggers automatic buying.
func (e *Engine) SetFeedThreshold(threshold float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.AutoFeeder.Owned {
		return shared.Declined(shared.DeclinedUnavailable, "auto-feeder is not owned")
	}
	if threshold <= 0 {
		return shared.Declined(shared.DeclinedUnavailable, "threshold must be positive")
	}
	e.state.AutoFeeder.FeedThreshold = threshold
	return nil
}

// HireCook adds a cook, growing the production queue by one slot.
func (e *Engine) HireCook() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Cooks >= farm.MaxCooks {
		return shared.Declined(shared.DeclinedNoCapacity, "kitchen is fully staffed")
	}
	if !e.state.CanAfford(farm.CookHirePrice) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "hiring costs $%.0f", farm.CookHirePrice)
	}
	e.state.Money -= farm.CookHirePrice
	e.state.Cooks++
	e.state.ProductionSlots = e.state.Cooks + 1
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Hired a cook", -farm.CookHirePrice, e.clock.Now())
	return nil
}

// UpgradeKitchen speeds up all future cooking jobs by 20% per level.
func (e *Engine) UpgradeKitchen() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.KitchenUpgrades >= farm.MaxKitchenUpgrades {
		return shared.Declined(shared.DeclinedNoCapacity, "kitchen is fully upgraded")
	}
	cost := farm.KitchenUpgradeBasePrice * float64(e.state.KitchenUpgrades+1)
	if !e.state.CanAfford(cost) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "upgrade costs $%.0f", cost)
	}
	e.state.Money -= cost
	e.state.KitchenUpgrades++
	e.state.RecordTransaction(ledger.TransactionTypePurchase,
		fmt.Sprintf("Kitchen upgraded to level %d", e.state.KitchenUpgrades), -cost, e.clock.Now())
	return nil
}

// BuyCounter adds a serving counter to each restaurant.
func (e *Engine) BuyCounter() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.RestaurantUnlocked {
		return shared.Declined(shared.DeclinedUnavailable, "restaurant is locked")
	}
	if e.state.Restaurants.Counters.Count >= e.state.Restaurants.Counters.MaxCount {
		return shared.Declined(shared.DeclinedNoCapacity, "no room for more counters")
	}
	if !e.state.CanAfford(farm.CounterPrice) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "a counter costs $%.0f", farm.CounterPrice)
	}
	e.state.Money -= farm.CounterPrice
	e.state.Restaurants.Counters.Count++
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Built a counter", -farm.CounterPrice, e.clock.Now())
	return nil
}

// BuyRestaurant opens another restaurant location.
func (e *Engine) BuyRestaurant() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.RestaurantUnlocked {
		return shared.Declined(shared.DeclinedUnavailable, "restaurant is locked")
	}
	if e.state.Restaurants.Count >= e.state.Restaurants.MaxCount {
		return shared.Declined(shared.DeclinedNoCapacity, "no locations left to open")
	}
	if !e.state.CanAfford(farm.RestaurantPrice) {
		return shared.Declined(shared.DeclinedInsufficientFunds, "a restaurant costs $%.0f", farm.RestaurantPrice)
	}
	e.state.Money -= farm.RestaurantPrice
	e.state.Restaurants.Count++
	e.state.RecordTransaction(ledger.TransactionTypePurchase, "Opened a restaurant", -farm.RestaurantPrice, e.clock.Now())
	return nil
}

func collectedMessage(eggs, golden int) string {
	if golden > 0 {
		return fmt.Sprintf("🥚 Auto-collected %d eggs and %d golden eggs", eggs, golden)
	}
	return fmt.Sprintf("🥚 Auto-collected %d eggs", eggs)
}

func milestoneMessage(threshold float64) string {
	return fmt.Sprintf("🎉 Milestone reached: $%.0f!", threshold)
}
