package shared

import (
	"errors"
	"fmt"
)

// DeclinedReason classifies why a player action was refused.
type DeclinedReason string

const (
	// DeclinedInsufficientFunds indicates the player cannot afford the action
	DeclinedInsufficientFunds DeclinedReason = "INSUFFICIENT_FUNDS"

	// DeclinedInsufficientResources indicates missing eggs, chickens or feed
	DeclinedInsufficientResources DeclinedReason = "INSUFFICIENT_RESOURCES"

	// DeclinedNoCapacity indicates a full queue or counter capacity
	DeclinedNoCapacity DeclinedReason = "NO_CAPACITY"

	// DeclinedNotReady indicates a prerequisite has not completed yet
	// (for example serving an order whose dish is still cooking)
	DeclinedNotReady DeclinedReason = "NOT_READY"

	// DeclinedUnavailable indicates the action's target does not exist
	// or is not in a state that accepts the action
	DeclinedUnavailable DeclinedReason = "UNAVAILABLE"
)

// DeclinedError signals a refused player action. Declined actions are not
// failures: state is left untouched and callers surface the reason to the
// player instead of propagating an error.
type DeclinedError struct {
	Reason  DeclinedReason
	Message string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("action declined (%s): %s", e.Reason, e.Message)
}

// Declined builds a DeclinedError with a formatted message.
func Declined(reason DeclinedReason, format string, args ...interface{}) error {
	return &DeclinedError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// IsDeclined reports whether err is a declined action, returning the
// decline when it is.
func IsDeclined(err error) (*DeclinedError, bool) {
	var declined *DeclinedError
	if errors.As(err, &declined) {
		return declined, true
	}
	return nil, false
}
