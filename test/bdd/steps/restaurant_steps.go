package steps

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cucumber/godog"

	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/automation"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

type restaurantContext struct {
	clock   *shared.MockClock
	state   *farm.GameState
	eng     *engine.Engine
	orderID string
	err     error
}

func (rc *restaurantContext) reset() {
	rc.clock = nil
	rc.state = nil
	rc.eng = nil
	rc.orderID = ""
	rc.err = nil
}

func (rc *restaurantContext) anUnlockedRestaurantFarmWith(money int) error {
	rc.clock = shared.NewMockClock(farmEpoch)
	rc.state = &farm.GameState{
		Money:              float64(money),
		Chickens:           3,
		Feed:               50,
		ProductionSlots:    2,
		RestaurantUnlocked: true,
		Restaurants:        restaurant.DefaultRestaurants(),
		LastUpdate:         farmEpoch,
	}
	rc.eng = engine.NewEngine(rc.state, rc.clock, nil, nil, nil, rand.New(rand.NewSource(1)))
	return nil
}

func (rc *restaurantContext) aPendingOrderFor(recipeID string) error {
	r, ok := recipe.ByID(recipe.ID(recipeID))
	if !ok {
		return fmt.Errorf("unknown recipe %s", recipeID)
	}
	order := restaurant.NewOrder("Greta", r, len(rc.state.ActiveOrders)+1, rc.clock.Now())
	rc.state.ActiveOrders = append(rc.state.ActiveOrders, order)
	rc.orderID = order.ID
	return nil
}

func (rc *restaurantContext) cookedDishesInStock(count int, recipeID string) error {
	rc.state.Products[recipe.ID(recipeID)] = count
	return nil
}

func (rc *restaurantContext) aCustomerArrives() error {
	rc.eng.SweepArrivals()
	return nil
}

func (rc *restaurantContext) iServeTheOrder() error {
	_, rc.err = rc.eng.CompleteOrder(rc.orderID)
	return nil
}

func (rc *restaurantContext) theCustomerWaits(seconds int) error {
	rc.clock.Advance(time.Duration(seconds) * time.Second)
	rc.eng.SweepExpirations()
	return nil
}

func (rc *restaurantContext) ordersAreActive(count int) error {
	got := len(rc.eng.Snapshot().ActiveOrders)
	if got != count {
		return fmt.Errorf("expected %d active orders, got %d", count, got)
	}
	return nil
}

func (rc *restaurantContext) theRestaurantFarmHas(money int) error {
	got := rc.eng.Snapshot().Money
	if got != float64(money) {
		return fmt.Errorf("expected $%d, got $%.2f", money, got)
	}
	return nil
}

func (rc *restaurantContext) servingIsDeclinedWithReason(reason string) error {
	declined, ok := shared.IsDeclined(rc.err)
	if !ok {
		return fmt.Errorf("expected a declined action, got: %v", rc.err)
	}
	if string(declined.Reason) != reason {
		return fmt.Errorf("expected reason %s, got %s", reason, declined.Reason)
	}
	return nil
}

func (rc *restaurantContext) anActiveAutoCollectorAtLevel(level int) error {
	rc.state.AutoCollector = automation.AutoCollector{
		IsActive:      true,
		RemainingTime: automation.CollectorDuration,
		Level:         level,
	}
	return nil
}

func (rc *restaurantContext) readyEggsInTheCoop(count int) error {
	rc.state.ReadyEggs = count
	return nil
}

func (rc *restaurantContext) oneCollectorTickPasses() error {
	rc.clock.Advance(100 * time.Millisecond)
	rc.eng.Advance(rc.clock.Now())
	return nil
}

func (rc *restaurantContext) theEggInventoryHolds(count int) error {
	got := rc.eng.Snapshot().EggInventory
	if got != count {
		return fmt.Errorf("expected %d eggs in inventory, got %d", count, got)
	}
	return nil
}

// RegisterRestaurantSteps wires the customer order and automation
// scenarios.
func RegisterRestaurantSteps(sc *godog.ScenarioContext) {
	rc := &restaurantContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	sc.Step(`^an unlocked restaurant farm with \$(\d+)$`, rc.anUnlockedRestaurantFarmWith)
	sc.Step(`^a pending order for "([^"]*)"$`, rc.aPendingOrderFor)
	sc.Step(`^(\d+) cooked "([^"]*)" in stock$`, rc.cookedDishesInStock)
	sc.Step(`^a customer arrives$`, rc.aCustomerArrives)
	sc.Step(`^I serve the order$`, rc.iServeTheOrder)
	sc.Step(`^the customer waits (\d+) seconds$`, rc.theCustomerWaits)
	sc.Step(`^(\d+) orders? (?:is|are) active$`, rc.ordersAreActive)
	sc.Step(`^the restaurant farm has \$(\d+)$`, rc.theRestaurantFarmHas)
	sc.Step(`^serving is declined with reason "([^"]*)"$`, rc.servingIsDeclinedWithReason)
	sc.Step(`^an active auto-collector at level (\d+)$`, rc.anActiveAutoCollectorAtLevel)
	sc.Step(`^(\d+) ready eggs in the coop$`, rc.readyEggsInTheCoop)
	sc.Step(`^one collector tick passes$`, rc.oneCollectorTickPasses)
	sc.Step(`^the egg inventory holds (\d+) eggs$`, rc.theEggInventoryHolds)
}
