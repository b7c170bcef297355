package commands

import (
	"context"
	"fmt"

	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
)

// PurchaseAutoCollectorCommand buys and activates the auto-collector.
type PurchaseAutoCollectorCommand struct{}

// TopUpAutoCollectorCommand extends the active collector's time budget.
type TopUpAutoCollectorCommand struct{}

// LevelUpAutoCollectorCommand raises the active collector's level.
type LevelUpAutoCollectorCommand struct{}

// PurchaseAutoFeederCommand buys the auto-feeder.
type PurchaseAutoFeederCommand struct{}

// ToggleAutoFeederCommand flips the owned feeder on or off.
type ToggleAutoFeederCommand struct{}

// SetFeedThresholdCommand adjusts the feeder's trigger level.
type SetFeedThresholdCommand struct {
	Threshold float64
}

// AutomationHandler handles automation purchase and control commands.
type AutomationHandler struct {
	engine *engine.Engine
}

// NewAutomationHandler creates a handler bound to the engine.
func NewAutomationHandler(e *engine.Engine) *AutomationHandler {
	return &AutomationHandler{engine: e}
}

// Handle dispatches automation commands.
func (h *AutomationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	common.LoggerFromContext(ctx).Log("debug", fmt.Sprintf("dispatching %T", request), nil)
	switch cmd := request.(type) {
	case PurchaseAutoCollectorCommand:
		return nil, h.engine.PurchaseAutoCollector()
	case TopUpAutoCollectorCommand:
		return nil, h.engine.TopUpAutoCollector()
	case LevelUpAutoCollectorCommand:
		return nil, h.engine.LevelUpAutoCollector()
	case PurchaseAutoFeederCommand:
		return nil, h.engine.PurchaseAutoFeeder()
	case ToggleAutoFeederCommand:
		return nil, h.engine.ToggleAutoFeeder()
	case SetFeedThresholdCommand:
		return nil, h.engine.SetFeedThreshold(cmd.Threshold)
	default:
		return nil, ErrUnknownCommand(request)
	}
}

// ErrUnknownCommand is returned when a handler receives a request type
// it was not registered for.
func ErrUnknownCommand(request common.Request) error {
	return fmt.Errorf("unknown command type %T", request)
}
