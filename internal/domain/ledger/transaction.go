package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxEntries bounds the audit log; older entries are dropped.
const MaxEntries = 50

// TransactionType classifies a money movement.
type TransactionType string

const (
	// TransactionTypePurchase covers chickens, feed, automation and upgrades
	TransactionTypePurchase TransactionType = "PURCHASE"

	// TransactionTypeSale covers selling eggs and cooked products
	TransactionTypeSale TransactionType = "SALE"

	// TransactionTypeOrderCompleted is income from serving a customer
	TransactionTypeOrderCompleted TransactionType = "ORDER_COMPLETED"

	// TransactionTypeOrderPenalty is the charge for an expired order
	TransactionTypeOrderPenalty TransactionType = "ORDER_PENALTY"

	// TransactionTypeAutomation covers auto-feeder feed purchases
	TransactionTypeAutomation TransactionType = "AUTOMATION"
)

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypePurchase,
		TransactionTypeSale,
		TransactionTypeOrderCompleted,
		TransactionTypeOrderPenalty,
		TransactionTypeAutomation:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is one immutable audit log entry. Amount is positive for
// income and negative for expenses.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewTransaction creates a validated transaction entry.
func NewTransaction(txType TransactionType, description string, amount float64, timestamp time.Time) (Transaction, error) {
	if !txType.IsValid() {
		return Transaction{}, &ErrInvalidTransaction{Field: "type", Reason: fmt.Sprintf("unknown transaction type: %s", txType)}
	}
	if amount == 0 {
		return Transaction{}, &ErrInvalidTransaction{Field: "amount", Reason: "amount cannot be zero"}
	}
	return Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Description: description,
		Amount:      amount,
		Timestamp:   timestamp,
	}, nil
}

// IsIncome returns true if the transaction credited money
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// IsExpense returns true if the transaction debited money
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// Append prepends a transaction to the log, keeping it newest-first and
// truncated to MaxEntries.
func Append(log []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(log)+1)
	out = append(out, tx)
	out = append(out, log...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
