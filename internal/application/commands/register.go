package commands

import (
	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
)

// RegisterAll wires every player command into the mediator.
func RegisterAll(m common.Mediator, e *engine.Engine) error {
	farmHandler := NewFarmHandler(e)
	automationHandler := NewAutomationHandler(e)
	restaurantHandler := NewRestaurantHandler(e)

	registrations := []struct {
		register func() error
	}{
		{func() error { return common.RegisterHandler[CollectEggsCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[SellEggsCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[BuyChickensCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[BuyFeedCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[StartProductionCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[StartBreedingCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[SellProductsCommand](m, farmHandler) }},
		{func() error { return common.RegisterHandler[PurchaseAutoCollectorCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[TopUpAutoCollectorCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[LevelUpAutoCollectorCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[PurchaseAutoFeederCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[ToggleAutoFeederCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[SetFeedThresholdCommand](m, automationHandler) }},
		{func() error { return common.RegisterHandler[CompleteOrderCommand](m, restaurantHandler) }},
		{func() error { return common.RegisterHandler[HireCookCommand](m, restaurantHandler) }},
		{func() error { return common.RegisterHandler[UpgradeKitchenCommand](m, restaurantHandler) }},
		{func() error { return common.RegisterHandler[BuyCounterCommand](m, restaurantHandler) }},
		{func() error { return common.RegisterHandler[BuyRestaurantCommand](m, restaurantHandler) }},
	}

	for _, r := range registrations {
		if err := r.register(); err != nil {
			return err
		}
	}
	return nil
}
