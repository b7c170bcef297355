package engine

import (
	"fmt"

	"github.com/featherlane/henhouse-go/internal/domain/ledger"
	"github.com/featherlane/henhouse-go/internal/domain/recipe"
	"github.com/featherlane/henhouse-go/internal/domain/restaurant"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
)

// SweepArrivals generates one customer if the restaurant is open and a
// counter is free. Driven by its own fixed-period timer.
func (e *Engine) SweepArrivals() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused || !e.state.RestaurantUnlocked {
		return
	}
	capacity := e.state.Restaurants.Capacity()
	if len(e.state.ActiveOrders) >= capacity {
		return
	}
	catalog := recipe.Catalog()
	r := catalog[e.rng.Intn(len(catalog))]
	name := restaurant.RandomCustomerName(e.rng)
	order := restaurant.NewOrder(name, r, len(e.state.ActiveOrders)+1, e.clock.Now())
	e.state.ActiveOrders = append(e.state.ActiveOrders, order)
	e.toasts.Emit(fmt.Sprintf("%s ordered %s %s", name, r.Icon, r.Name), SeverityInfo)
}

// SweepExpirations removes orders whose customers gave up waiting,
// charging the abandonment penalty. This is the only passive money loss
// in the game, and it deliberately does not clamp at zero.
func (e *Engine) SweepExpirations() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return
	}
	now := e.clock.Now()
	for i := range e.state.ActiveOrders {
		o := &e.state.ActiveOrders[i]
		if o.Status.IsTerminal() || !o.Expired(now) {
			continue
		}
		if err := o.TransitionTo(restaurant.OrderStatusExpired); err != nil {
			continue
		}
		penalty := o.Penalty()
		e.state.Money -= penalty
		e.state.RecordTransaction(ledger.TransactionTypeOrderPenalty,
			fmt.Sprintf("%s left without their %s", o.CustomerName, o.OrderName), -penalty, now)
		e.toasts.Emit(fmt.Sprintf("😡 %s stormed out! -$%.0f", o.CustomerName, penalty), SeverityWarning)
		e.sounds.PlayEvent(SoundWarning)
		e.metrics.RecordOrderExpired()
	}
	remaining := e.state.ActiveOrders[:0]
	for _, o := range e.state.ActiveOrders {
		if !o.Status.IsTerminal() {
			remaining = append(remaining, o)
		}
	}
	e.state.ActiveOrders = remaining
	e.reindexCounters()
}

// CompleteOrder serves the order from cooked stock. A missing dish is a
// declined no-op that tells the caller whether it is still cooking or
// was never started.
func (e *Engine) CompleteOrder(orderID string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := -1
	for i, o := range e.state.ActiveOrders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, shared.Declined(shared.DeclinedUnavailable, "no active order %s", orderID)
	}
	pending := &e.state.ActiveOrders[idx]
	if e.state.Products[pending.RecipeID] == 0 {
		if e.hasJobFor(pending.RecipeID) {
			return 0, shared.Declined(shared.DeclinedNotReady, "%s is still cooking", pending.OrderName)
		}
		return 0, shared.Declined(shared.DeclinedNotReady, "%s has not been started", pending.OrderName)
	}

	// Stock exists, so the order is servable even when the status sweep
	// has not caught up yet; completion only proceeds through the ready
	// state.
	if err := pending.TransitionTo(restaurant.OrderStatusReadyToServe); err != nil {
		return 0, err
	}
	if err := pending.TransitionTo(restaurant.OrderStatusCompleted); err != nil {
		return 0, err
	}
	order := *pending

	e.state.Products[order.RecipeID]--
	if e.state.Products[order.RecipeID] == 0 {
		delete(e.state.Products, order.RecipeID)
	}
	e.state.Money += order.Value
	e.state.ActiveOrders = append(e.state.ActiveOrders[:idx], e.state.ActiveOrders[idx+1:]...)
	e.reindexCounters()
	e.state.CompletedOrders++
	now := e.clock.Now()
	e.state.RecordTransaction(ledger.TransactionTypeOrderCompleted,
		fmt.Sprintf("Served %s to %s", order.OrderName, order.CustomerName), order.Value, now)
	e.toasts.Emit(fmt.Sprintf("✅ %s enjoyed their %s! +$%.0f", order.CustomerName, order.OrderName, order.Value), SeveritySuccess)
	e.sounds.PlayEvent(SoundSuccess)
	e.metrics.RecordOrderCompleted()
	return order.Value, nil
}

// reindexCounters reassigns counters sequentially after removals so
// assignments stay unique and within capacity.
func (e *Engine) reindexCounters() {
	for i := range e.state.ActiveOrders {
		e.state.ActiveOrders[i].AssignedCounter = i + 1
	}
}
