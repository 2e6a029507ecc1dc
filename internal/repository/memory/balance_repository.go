package memory

import (
	"context"
	"sync"

	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceRepository guards balance and ledger with a single mutex so a debit
// check-and-decrement is atomic with respect to concurrent debits.
type BalanceRepository struct {
	mu           sync.Mutex
	balances     map[uuid.UUID]decimal.Decimal
	transactions map[uuid.UUID][]*entity.Transaction
}

func NewBalanceRepository() contract.BalanceRepository {
	return &BalanceRepository{
		balances:     make(map[uuid.UUID]decimal.Decimal),
		transactions: make(map[uuid.UUID][]*entity.Transaction),
	}
}

func (r *BalanceRepository) EnsureAccount(ctx context.Context, userId uuid.UUID, opening decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[userId]; !ok {
		r.balances[userId] = opening
	}
	return nil
}

func (r *BalanceRepository) Balance(ctx context.Context, userId uuid.UUID) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[userId], nil
}

func (r *BalanceRepository) Credit(ctx context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[tx.UserId] = r.balances[tx.UserId].Add(tx.Amount)
	r.prepend(tx)
	return nil
}

func (r *BalanceRepository) Debit(ctx context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance := r.balances[tx.UserId]
	if tx.Amount.GreaterThan(balance) {
		return entity.ErrInsufficientBalance
	}
	r.balances[tx.UserId] = balance.Sub(tx.Amount)
	r.prepend(tx)
	return nil
}

func (r *BalanceRepository) Transactions(ctx context.Context, userId uuid.UUID) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ledger := r.transactions[userId]
	out := make([]*entity.Transaction, len(ledger))
	for i, tx := range ledger {
		cp := *tx
		out[i] = &cp
	}
	return out, nil
}

// prepend keeps the ledger most recent first, storing a private copy so no
// pointer is shared with the caller. Caller holds the lock.
func (r *BalanceRepository) prepend(tx *entity.Transaction) {
	cp := *tx
	r.transactions[tx.UserId] = append([]*entity.Transaction{&cp}, r.transactions[tx.UserId]...)
}
