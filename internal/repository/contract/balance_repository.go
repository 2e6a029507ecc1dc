package contract

import (
	"context"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceRepository is the per-user balance plus its append-only transaction
// ledger. Balance and transaction list always mutate together or not at all.
type BalanceRepository interface {
	// EnsureAccount initializes a user's balance if absent. The opening
	// amount is not recorded as a transaction (it models the mock starting
	// balance, not a deposit).
	EnsureAccount(ctx context.Context, userId uuid.UUID, opening decimal.Decimal) error

	Balance(ctx context.Context, userId uuid.UUID) (decimal.Decimal, error)

	// Credit applies a deposit transaction: increases the balance and
	// prepends the record to the ledger.
	Credit(ctx context.Context, tx *entity.Transaction) error

	// Debit applies a debit transaction atomically. It fails with
	// entity.ErrInsufficientBalance, without mutating anything, when the
	// amount exceeds the current balance.
	Debit(ctx context.Context, tx *entity.Transaction) error

	// Transactions returns the user's ledger, most recent first.
	Transactions(ctx context.Context, userId uuid.UUID) ([]*entity.Transaction, error)
}
