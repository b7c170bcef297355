package steps

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cucumber/godog"

	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

var farmEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type farmContext struct {
	clock           *shared.MockClock
	state           *farm.GameState
	eng             *engine.Engine
	err             error
	collectedEggs   int
	collectedGolden int
}

func (fc *farmContext) reset() {
	fc.clock = nil
	fc.state = nil
	fc.eng = nil
	fc.err = nil
	fc.collectedEggs = 0
	fc.collectedGolden = 0
}

func (fc *farmContext) aFarmWith(money, chickens, feed int) error {
	fc.clock = shared.NewMockClock(farmEpoch)
	fc.state = &farm.GameState{
		Money:           float64(money),
		Chickens:        chickens,
		Feed:            float64(feed),
		ProductionSlots: 2,
		LastUpdate:      farmEpoch,
	}
	fc.eng = engine.NewEngine(fc.state, fc.clock, nil, nil, nil, rand.New(rand.NewSource(1)))
	return nil
}

// Setup steps mutate the state document directly before play begins;
// scenarios run single-threaded so nothing races the engine.
func (fc *farmContext) eggsInTheInventory(count int) error {
	fc.state.EggInventory = count
	return nil
}

func (fc *farmContext) iTryToBuyAFeedPack(size string) error {
	fc.err = fc.eng.BuyFeed(recipe.PackSize(size))
	return nil
}

func (fc *farmContext) iCollectTheReadyEggs() error {
	fc.collectedEggs, fc.collectedGolden = fc.eng.CollectEggs()
	return nil
}

func (fc *farmContext) iSellMyEggs() error {
	_, fc.err = fc.eng.SellEggs()
	return fc.err
}

func (fc *farmContext) iStartCooking(recipeID string) error {
	fc.err = fc.eng.StartProduction(recipe.ID(recipeID))
	return nil
}

func (fc *farmContext) secondsPass(seconds int) error {
	engine.Simulate(fc.eng, fc.clock, time.Duration(seconds)*time.Second, 100*time.Millisecond)
	return nil
}

func (fc *farmContext) theActionIsDeclinedWithReason(reason string) error {
	declined, ok := shared.IsDeclined(fc.err)
	if !ok {
		return fmt.Errorf("expected a declined action, got: %v", fc.err)
	}
	if string(declined.Reason) != reason {
		return fmt.Errorf("expected reason %s, got %s", reason, declined.Reason)
	}
	return nil
}

func (fc *farmContext) theFarmHas(money int) error {
	got := fc.eng.Snapshot().Money
	if got != float64(money) {
		return fmt.Errorf("expected $%d, got $%.2f", money, got)
	}
	return nil
}

func (fc *farmContext) thereAreReadyEggs(count int) error {
	got := fc.eng.Snapshot().ReadyEggs
	if got != count {
		return fmt.Errorf("expected %d ready eggs, got %d", count, got)
	}
	return nil
}

func (fc *farmContext) eggsAreCollected(count int) error {
	if fc.collectedEggs != count {
		return fmt.Errorf("expected %d collected eggs, got %d", count, fc.collectedEggs)
	}
	return nil
}

func (fc *farmContext) dishesInStock(count int, recipeID string) error {
	got := fc.eng.Snapshot().Products[recipe.ID(recipeID)]
	if got != count {
		return fmt.Errorf("expected %d %s in stock, got %d", count, recipeID, got)
	}
	return nil
}

func (fc *farmContext) theMilestoneForHasBeenReached(threshold int) error {
	if !fc.eng.Snapshot().HasMilestone(float64(threshold)) {
		return fmt.Errorf("milestone $%d not reached", threshold)
	}
	return nil
}

func (fc *farmContext) milestonesHaveBeenReached(count int) error {
	got := len(fc.eng.Snapshot().ReachedMilestones)
	if got != count {
		return fmt.Errorf("expected %d milestones, got %d", count, got)
	}
	return nil
}

func (fc *farmContext) theRestaurantIsUnlocked() error {
	if !fc.eng.Snapshot().RestaurantUnlocked {
		return fmt.Errorf("restaurant is still locked")
	}
	return nil
}

// RegisterFarmSteps wires the husbandry and production scenarios.
func RegisterFarmSteps(sc *godog.ScenarioContext) {
	fc := &farmContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	sc.Step(`^a farm with \$(\d+), (\d+) chickens and (\d+) feed$`, fc.aFarmWith)
	sc.Step(`^(\d+) eggs in the inventory$`, fc.eggsInTheInventory)
	sc.Step(`^I try to buy a "([^"]*)" feed pack$`, fc.iTryToBuyAFeedPack)
	sc.Step(`^I collect the ready eggs$`, fc.iCollectTheReadyEggs)
	sc.Step(`^I sell my eggs$`, fc.iSellMyEggs)
	sc.Step(`^I start cooking an? "([^"]*)"$`, fc.iStartCooking)
	sc.Step(`^(\d+) seconds? pass$`, fc.secondsPass)
	sc.Step(`^the action is declined with reason "([^"]*)"$`, fc.theActionIsDeclinedWithReason)
	sc.Step(`^the farm has \$(\d+)$`, fc.theFarmHas)
	sc.Step(`^there are (\d+) ready eggs$`, fc.thereAreReadyEggs)
	sc.Step(`^(\d+) eggs are collected$`, fc.eggsAreCollected)
	sc.Step(`^(\d+) "([^"]*)" (?:is|are) in stock$`, fc.dishesInStock)
	sc.Step(`^the milestone for \$(\d+) has been reached$`, fc.theMilestoneForHasBeenReached)
	sc.Step(`^(\d+) milestones have been reached$`, fc.milestonesHaveBeenReached)
	sc.Step(`^the restaurant is unlocked$`, fc.theRestaurantIsUnlocked)
}
