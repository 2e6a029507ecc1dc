package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"finance-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func debitOf(userId uuid.UUID, amount string) *entity.Transaction {
	return &entity.Transaction{
		Id:     uuid.New(),
		UserId: userId,
		Type:   entity.TransactionTypeDebit,
		Amount: decimal.RequireFromString(amount),
		Date:   time.Now(),
	}
}

func depositOf(userId uuid.UUID, amount string) *entity.Transaction {
	return &entity.Transaction{
		Id:     uuid.New(),
		UserId: userId,
		Type:   entity.TransactionTypeDeposit,
		Amount: decimal.RequireFromString(amount),
		Date:   time.Now(),
	}
}

func TestEnsureAccountIsIdempotent(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()

	assert.NoError(t, repo.EnsureAccount(context.Background(), userId, decimal.RequireFromString("10")))
	// Second call must not reset a spent balance.
	assert.NoError(t, repo.Debit(context.Background(), debitOf(userId, "4")))
	assert.NoError(t, repo.EnsureAccount(context.Background(), userId, decimal.RequireFromString("10")))

	balance, err := repo.Balance(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, "6", balance.String())
}

func TestCreditAndDebitAdjustBalance(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()

	assert.NoError(t, repo.Credit(context.Background(), depositOf(userId, "10")))
	assert.NoError(t, repo.Debit(context.Background(), debitOf(userId, "0.5")))

	balance, err := repo.Balance(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, "9.5", balance.String())
}

func TestDebitRejectsOverdraft(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()
	assert.NoError(t, repo.Credit(context.Background(), depositOf(userId, "1")))

	err := repo.Debit(context.Background(), debitOf(userId, "3"))
	assert.ErrorIs(t, err, entity.ErrInsufficientBalance)

	// A rejected debit leaves both balance and ledger untouched.
	balance, _ := repo.Balance(context.Background(), userId)
	assert.Equal(t, "1", balance.String())
	txs, _ := repo.Transactions(context.Background(), userId)
	assert.Len(t, txs, 1)
}

func TestDebitToExactlyZero(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()
	assert.NoError(t, repo.Credit(context.Background(), depositOf(userId, "3")))

	assert.NoError(t, repo.Debit(context.Background(), debitOf(userId, "3")))

	balance, _ := repo.Balance(context.Background(), userId)
	assert.True(t, balance.IsZero())
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()
	assert.NoError(t, repo.EnsureAccount(context.Background(), userId, decimal.RequireFromString("5")))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Debit(context.Background(), debitOf(userId, "1")); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	balance, _ := repo.Balance(context.Background(), userId)
	assert.True(t, balance.IsZero())
}

func TestTransactionsMostRecentFirst(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()

	first := depositOf(userId, "10")
	second := debitOf(userId, "1")
	assert.NoError(t, repo.Credit(context.Background(), first))
	assert.NoError(t, repo.Debit(context.Background(), second))

	txs, err := repo.Transactions(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, second.Id, txs[0].Id)
	assert.Equal(t, first.Id, txs[1].Id)
}

func TestTransactionsAreDetached(t *testing.T) {
	repo := NewBalanceRepository()
	userId := uuid.New()
	assert.NoError(t, repo.Credit(context.Background(), depositOf(userId, "10")))

	txs, _ := repo.Transactions(context.Background(), userId)
	txs[0].Amount = decimal.RequireFromString("999")
	txs[0].Description = "tampered"

	fresh, _ := repo.Transactions(context.Background(), userId)
	assert.Equal(t, "10", fresh[0].Amount.String())
	assert.NotEqual(t, "tampered", fresh[0].Description)
}

func TestBalancesAreIsolatedPerUser(t *testing.T) {
	repo := NewBalanceRepository()
	alice := uuid.New()
	bob := uuid.New()

	assert.NoError(t, repo.Credit(context.Background(), depositOf(alice, "100")))

	err := repo.Debit(context.Background(), debitOf(bob, "1"))
	assert.ErrorIs(t, err, entity.ErrInsufficientBalance)
}
