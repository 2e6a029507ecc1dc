package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAssetRequest struct {
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=cash stocks etfs crypto"`
	Ticker      string          `json:"ticker,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Platform    string          `json:"platform" validate:"required"`
	Performance float64         `json:"performance"`
	Notes       string          `json:"notes,omitempty"`
}

type UpdateAssetRequest struct {
	Name        *string          `json:"name,omitempty"`
	Ticker      *string          `json:"ticker,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Platform    *string          `json:"platform,omitempty"`
	Performance *float64         `json:"performance,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

type AssetResponse struct {
	Id          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Ticker      string          `json:"ticker,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Platform    string          `json:"platform"`
	Performance float64         `json:"performance"`
	Notes       string          `json:"notes,omitempty"`
	LastUpdated time.Time       `json:"last_updated"`
}

type AllocationSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type PortfolioSummaryResponse struct {
	TotalValue  decimal.Decimal   `json:"total_value"`
	TotalAssets int               `json:"total_assets"`
	ByType      []AllocationSlice `json:"by_type"`
	ByPlatform  []AllocationSlice `json:"by_platform"`
}
