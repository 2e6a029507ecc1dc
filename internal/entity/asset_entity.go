package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeCash   AssetType = "cash"
	AssetTypeStocks AssetType = "stocks"
	AssetTypeETFs   AssetType = "etfs"
	AssetTypeCrypto AssetType = "crypto"
)

// Asset is a manually entered portfolio position.
type Asset struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Type        AssetType
	Ticker      string
	Value       decimal.Decimal
	Platform    string
	Performance float64 // percent, display metric only
	Notes       string
	LastUpdated time.Time
	CreatedAt   time.Time
}
