package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/domain/ledger"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewTransaction(t *testing.T) {
	tx, err := ledger.NewTransaction(ledger.TransactionTypeSale, "10 eggs", 20, now)
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, ledger.TransactionTypeSale, tx.Type)
	assert.True(t, tx.IsIncome())
	assert.False(t, tx.IsExpense())
}

func TestNewTransaction_RejectsUnknownType(t *testing.T) {
	_, err := ledger.NewTransaction("BRIBE", "shady", 100, now)

	var invalid *ledger.ErrInvalidTransaction
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "type", invalid.Field)
}

func TestNewTransaction_RejectsZeroAmount(t *testing.T) {
	_, err := ledger.NewTransaction(ledger.TransactionTypePurchase, "free", 0, now)

	var invalid *ledger.ErrInvalidTransaction
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "amount", invalid.Field)
}

func TestAppend_NewestFirst(t *testing.T) {
	var log []ledger.Transaction
	first, _ := ledger.NewTransaction(ledger.TransactionTypePurchase, "first", -10, now)
	second, _ := ledger.NewTransaction(ledger.TransactionTypeSale, "second", 10, now)

	log = ledger.Append(log, first)
	log = ledger.Append(log, second)

	require.Len(t, log, 2)
	assert.Equal(t, "second", log[0].Description)
	assert.Equal(t, "first", log[1].Description)
}

func TestAppend_BoundedAtMaxEntries(t *testing.T) {
	var log []ledger.Transaction
	for i := 0; i < ledger.MaxEntries+10; i++ {
		tx, err := ledger.NewTransaction(ledger.TransactionTypeSale, fmt.Sprintf("sale %d", i), 1, now)
		require.NoError(t, err)
		log = ledger.Append(log, tx)
	}

	require.Len(t, log, ledger.MaxEntries)
	assert.Equal(t, fmt.Sprintf("sale %d", ledger.MaxEntries+9), log[0].Description)
}

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, ledger.TransactionTypeAutomation.IsValid())
	assert.True(t, ledger.TransactionTypeOrderPenalty.IsValid())
	assert.False(t, ledger.TransactionType("BRIBE").IsValid())
}
