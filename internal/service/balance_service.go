// FILE: internal/service/balance_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
	"finance-advisor-be/internal/mapper"
	"finance-advisor-be/internal/pkg/metrics"
	"finance-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IBalanceService interface {
	GetBalance(ctx context.Context, userId uuid.UUID) (*dto.BalanceResponse, error)
	Deposit(ctx context.Context, userId uuid.UUID, req *dto.DepositRequest) (*dto.TransactionResponse, error)
	ListTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error)
}

type balanceService struct {
	balanceRepo contract.BalanceRepository
	txMapper    *mapper.TransactionMapper
}

func NewBalanceService(balanceRepo contract.BalanceRepository) IBalanceService {
	return &balanceService{
		balanceRepo: balanceRepo,
		txMapper:    mapper.NewTransactionMapper(),
	}
}

func (s *balanceService) GetBalance(ctx context.Context, userId uuid.UUID) (*dto.BalanceResponse, error) {
	balance, err := s.balanceRepo.Balance(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{Balance: balance}, nil
}

// Deposit always succeeds for a positive amount. Non-positive amounts are
// rejected here explicitly rather than relying on the form.
func (s *balanceService) Deposit(ctx context.Context, userId uuid.UUID, req *dto.DepositRequest) (*dto.TransactionResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, entity.ErrInvalidAmount
	}

	tx := &entity.Transaction{
		Id:          uuid.New(),
		UserId:      userId,
		Type:        entity.TransactionTypeDeposit,
		Amount:      req.Amount,
		Method:      req.Method,
		Description: fmt.Sprintf("Added funds via %s", req.Method),
		Date:        time.Now(),
	}

	if err := s.balanceRepo.Credit(ctx, tx); err != nil {
		return nil, err
	}
	metrics.DepositsTotal.Inc()

	return s.txMapper.ToResponse(tx), nil
}

func (s *balanceService) ListTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error) {
	txs, err := s.balanceRepo.Transactions(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.txMapper.ToResponses(txs), nil
}
