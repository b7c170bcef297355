package queries

import (
	"context"

	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/ledger"
)

// FarmStatusQuery asks for a read-only view of the current game state.
type FarmStatusQuery struct{}

// FarmStatusResult carries a deep copy of the state plus the derived
// warning view; readers never alias the engine's live document.
type FarmStatusResult struct {
	State    *farm.GameState
	Warnings []farm.Warning
	Paused   bool
}

// TransactionsQuery asks for the audit log, newest first.
type TransactionsQuery struct{}

// TransactionsResult carries the bounded transaction log.
type TransactionsResult struct {
	Transactions []ledger.Transaction
}

// StatusHandler answers read-only queries from engine snapshots.
type StatusHandler struct {
	engine *engine.Engine
}

// NewStatusHandler creates a handler bound to the engine.
func NewStatusHandler(e *engine.Engine) *StatusHandler {
	return &StatusHandler{engine: e}
}

// Handle dispatches status queries.
func (h *StatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch request.(type) {
	case FarmStatusQuery:
		snapshot := h.engine.Snapshot()
		return FarmStatusResult{
			State:    snapshot,
			Warnings: snapshot.Warnings(),
			Paused:   h.engine.IsPaused(),
		}, nil
	case TransactionsQuery:
		return TransactionsResult{Transactions: h.engine.Snapshot().Transactions}, nil
	default:
		return nil, ErrUnknownQuery(request)
	}
}

// RegisterAll wires every query into the mediator.
func RegisterAll(m common.Mediator, e *engine.Engine) error {
	handler := NewStatusHandler(e)
	if err := common.RegisterHandler[FarmStatusQuery](m, handler); err != nil {
		return err
	}
	return common.RegisterHandler[TransactionsQuery](m, handler)
}
