package commands

import (
	"context"
	"fmt"

	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
)

// CompleteOrderCommand serves an active order from cooked stock.
type CompleteOrderCommand struct {
	OrderID string
}

// CompleteOrderResult reports the credited order value.
type CompleteOrderResult struct {
	Value float64
}

// HireCookCommand hires a cook, adding a production slot.
type HireCookCommand struct{}

// UpgradeKitchenCommand buys the next kitchen speed upgrade.
type UpgradeKitchenCommand struct{}

// BuyCounterCommand adds a serving counter.
type BuyCounterCommand struct{}

// BuyRestaurantCommand opens another restaurant location.
type BuyRestaurantCommand struct{}

// RestaurantHandler handles order fulfillment and expansion commands.
type RestaurantHandler struct {
	engine *engine.Engine
}

// NewRestaurantHandler creates a handler bound to the engine.
func NewRestaurantHandler(e *engine.Engine) *RestaurantHandler {
	return &RestaurantHandler{engine: e}
}

// Handle dispatches restaurant commands.
func (h *RestaurantHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	common.LoggerFromContext(ctx).Log("debug", fmt.Sprintf("dispatching %T", request), nil)
	switch cmd := request.(type) {
	case CompleteOrderCommand:
		value, err := h.engine.CompleteOrder(cmd.OrderID)
		if err != nil {
			return nil, err
		}
		return CompleteOrderResult{Value: value}, nil
	case HireCookCommand:
		return nil, h.engine.HireCook()
	case UpgradeKitchenCommand:
		return nil, h.engine.UpgradeKitchen()
	case BuyCounterCommand:
		return nil, h.engine.BuyCounter()
	case BuyRestaurantCommand:
		return nil, h.engine.BuyRestaurant()
	default:
		return nil, ErrUnknownCommand(request)
	}
}
