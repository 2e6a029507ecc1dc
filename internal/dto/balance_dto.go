package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	// Amount positivity is checked in the service (entity.ErrInvalidAmount);
	// the validator cannot see inside a decimal.
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" validate:"required,oneof=credit-card paypal bank-transfer"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type TransactionResponse struct {
	Id          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
