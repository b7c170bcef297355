package commands

import (
	"context"
	"fmt"

	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
)

// CollectEggsCommand moves all ready eggs into inventory.
type CollectEggsCommand struct{}

// CollectEggsResult reports how many eggs were gathered.
type CollectEggsResult struct {
	Eggs       int
	GoldenEggs int
}

// SellEggsCommand sells the whole egg inventory.
type SellEggsCommand struct{}

// SellEggsResult reports the sale value.
type SellEggsResult struct {
	Total float64
}

// BuyChickensCommand purchases chickens from the store.
type BuyChickensCommand struct {
	Count int
}

// BuyFeedCommand purchases one feed pack.
type BuyFeedCommand struct {
	Size recipe.PackSize
}

// StartProductionCommand admits a cooking job.
type StartProductionCommand struct {
	RecipeID recipe.ID
}

// StartBreedingCommand queues a golden chicken breeding job.
type StartBreedingCommand struct{}

// SellProductsCommand sells all cooked products at once.
type SellProductsCommand struct{}

// SellProductsResult reports the sale value.
type SellProductsResult struct {
	Total float64
}

// FarmHandler handles the husbandry and production commands by
// delegating to the engine, which owns the state.
type FarmHandler struct {
	engine *engine.Engine
}

// NewFarmHandler creates a handler bound to the engine.
func NewFarmHandler(e *engine.Engine) *FarmHandler {
	return &FarmHandler{engine: e}
}

// Handle dispatches farm commands.
func (h *FarmHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	common.LoggerFromContext(ctx).Log("debug", fmt.Sprintf("dispatching %T", request), nil)
	switch cmd := request.(type) {
	case CollectEggsCommand:
		eggs, golden := h.engine.CollectEggs()
		return CollectEggsResult{Eggs: eggs, GoldenEggs: golden}, nil
	case SellEggsCommand:
		total, err := h.engine.SellEggs()
		if err != nil {
			return nil, err
		}
		return SellEggsResult{Total: total}, nil
	case BuyChickensCommand:
		return nil, h.engine.BuyChickens(cmd.Count)
	case BuyFeedCommand:
		return nil, h.engine.BuyFeed(cmd.Size)
	case StartProductionCommand:
		return nil, h.engine.StartProduction(cmd.RecipeID)
	case StartBreedingCommand:
		return nil, h.engine.StartBreeding()
	case SellProductsCommand:
		total, err := h.engine.SellProducts()
		if err != nil {
			return nil, err
		}
		return SellProductsResult{Total: total}, nil
	default:
		return nil, ErrUnknownCommand(request)
	}
}
