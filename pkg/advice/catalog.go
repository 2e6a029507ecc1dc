// Package advice holds the static advisor catalog and the canned response
// generator. The catalog is fixed at process start; prices are in EUR.
package advice

import (
	"finance-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
)

// Catalog returns the built-in advisor features. Callers must treat the
// returned entries as read-only.
func Catalog() []*entity.Feature {
	return []*entity.Feature{
		{
			Id:               "keep-or-sell",
			Name:             "Should I keep or sell this asset?",
			Description:      "Get personalized advice on whether to hold or sell a specific asset in your portfolio.",
			Price:            decimal.NewFromInt(1),
			RequiresInput:    true,
			InputLabel:       "Asset Name",
			InputPlaceholder: "e.g., AAPL, Bitcoin, etc.",
		},
		{
			Id:               "sell-asset",
			Name:             "Should I sell this asset?",
			Description:      "Focused analysis on whether selling a specific asset is advisable in the current market.",
			Price:            decimal.NewFromFloat(0.5),
			RequiresInput:    true,
			InputLabel:       "Asset Name",
			InputPlaceholder: "e.g., AAPL, Bitcoin, etc.",
		},
		{
			Id:               "better-candidate",
			Name:             "Find a better candidate for this stock?",
			Description:      "Discover alternative investments that may outperform your current stock holdings.",
			Price:            decimal.NewFromFloat(0.5),
			RequiresInput:    true,
			InputLabel:       "Current Stock",
			InputPlaceholder: "e.g., AAPL, MSFT, etc.",
		},
		{
			Id:               "analyze-stocks",
			Name:             "Analyze these stocks (up to 5)",
			Description:      "Get a comprehensive analysis of multiple stocks in your portfolio or watchlist.",
			Price:            decimal.NewFromFloat(1.5),
			RequiresInput:    true,
			InputLabel:       "Stock Symbols (comma separated)",
			InputPlaceholder: "e.g., AAPL, MSFT, GOOGL, AMZN, TSLA",
		},
		{
			Id:          "analyze-patrimoine",
			Name:        "Analyze my patrimoine and give me advice",
			Description: "Comprehensive review of your entire portfolio with strategic recommendations.",
			Price:       decimal.NewFromInt(3),
		},
		{
			Id:               "future-patrimoine",
			Name:             "What will be my patrimoine in X years?",
			Description:      "Forecast the potential future value of your portfolio based on current setup.",
			Price:            decimal.NewFromFloat(1.5),
			RequiresInput:    true,
			InputLabel:       "Number of Years",
			InputType:        "number",
			InputPlaceholder: "e.g., 5, 10, 20",
		},
		{
			Id:          "finance-news",
			Name:        "What are the latest news in finance?",
			Description: "Get a curated summary of the most important recent financial news and market trends.",
			Price:       decimal.NewFromFloat(0.5),
		},
	}
}
