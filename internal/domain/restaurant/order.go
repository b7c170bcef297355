package restaurant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/featherlane/henhouse-go/internal/domain/recipe"
)

// OrderStatus is the explicit lifecycle of a customer order.
type OrderStatus string

const (
	// OrderStatusOrdering means no matching cook job has started yet
	OrderStatusOrdering OrderStatus = "ORDERING"

	// OrderStatusAwaitingCook means a matching job is in the production queue
	OrderStatusAwaitingCook OrderStatus = "AWAITING_COOK"

	// OrderStatusReadyToServe means a matching cooked product is in stock
	OrderStatusReadyToServe OrderStatus = "READY_TO_SERVE"

	// OrderStatusCompleted is terminal: the customer was served
	OrderStatusCompleted OrderStatus = "COMPLETED"

	// OrderStatusExpired is terminal: the customer left angry
	OrderStatusExpired OrderStatus = "EXPIRED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusExpired
}

// validTransitions maps each status to the statuses it may move to.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusOrdering:     {OrderStatusAwaitingCook, OrderStatusReadyToServe, OrderStatusExpired},
	OrderStatusAwaitingCook: {OrderStatusReadyToServe, OrderStatusOrdering, OrderStatusExpired},
	OrderStatusReadyToServe: {OrderStatusCompleted, OrderStatusExpired, OrderStatusAwaitingCook, OrderStatusOrdering},
	OrderStatusCompleted:    {},
	OrderStatusExpired:      {},
}

// CanTransitionTo checks whether moving from s to target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Order is one customer's order occupying a restaurant counter.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"name"`
	RecipeID        recipe.ID     `json:"recipe"`
	OrderName       string        `json:"orderName"`
	Icon            string        `json:"icon"`
	Value           float64       `json:"value"`
	TimeLimit       time.Duration `json:"timeLimit"`
	ArrivalTime     time.Time     `json:"arrivalTime"`
	Status          OrderStatus   `json:"status"`
	AssignedCounter int           `json:"assignedCounter"`
}

// NewOrder creates an order for the given customer and recipe, assigned
// to the given counter. The customer waits the recipe's cook time plus a
// 50% buffer.
func NewOrder(customerName string, r recipe.Recipe, counter int, now time.Time) Order {
	return Order{
		ID:              uuid.NewString(),
		CustomerName:    customerName,
		RecipeID:        r.ID,
		OrderName:       r.Name,
		Icon:            r.Icon,
		Value:           r.SellPrice,
		TimeLimit:       r.OrderTimeLimit(),
		ArrivalTime:     now,
		Status:          OrderStatusOrdering,
		AssignedCounter: counter,
	}
}

// Expired reports whether the customer has waited past the time limit.
func (o Order) Expired(now time.Time) bool {
	return now.Sub(o.ArrivalTime) > o.TimeLimit
}

// Penalty is the money charged when the order expires.
func (o Order) Penalty() float64 {
	return float64(int(o.Value * 0.1))
}

// TransitionTo moves the order to a new status, rejecting illegal moves.
func (o *Order) TransitionTo(target OrderStatus) error {
	if o.Status == target {
		return nil
	}
	if !o.Status.CanTransitionTo(target) {
		return fmt.Errorf("order %s: illegal transition %s -> %s", o.ID, o.Status, target)
	}
	o.Status = target
	return nil
}
