package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeDebit   TransactionType = "debit"
)

// Transaction is an immutable record of a balance-affecting event.
// The ledger is append-only: transactions are never edited or removed.
type Transaction struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Method      string // deposit channel, empty for debits
	Description string
	Date        time.Time
}
