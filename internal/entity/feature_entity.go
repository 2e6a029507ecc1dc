package entity

import "github.com/shopspring/decimal"

// Feature is a purchasable advisor capability from the static catalog.
// Catalog entries are immutable after startup.
type Feature struct {
	Id               string
	Name             string
	Description      string
	Price            decimal.Decimal
	RequiresInput    bool
	InputLabel       string
	InputType        string // "text" or "number", display hint only
	InputPlaceholder string
}
