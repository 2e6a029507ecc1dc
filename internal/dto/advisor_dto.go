package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FeatureResponse struct {
	Id               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	RequiresInput    bool            `json:"requires_input"`
	InputLabel       string          `json:"input_label,omitempty"`
	InputType        string          `json:"input_type,omitempty"`
	InputPlaceholder string          `json:"input_placeholder,omitempty"`
}

type PurchaseAdviceRequest struct {
	FeatureId string `json:"feature_id" validate:"required"`
	Input     string `json:"input,omitempty"`
}

type FeedbackRequest struct {
	// Pointer so "false" survives the required check.
	IsHelpful *bool `json:"is_helpful" validate:"required"`
}

type AdviceRequestResponse struct {
	Id             uuid.UUID  `json:"id"`
	UserId         uuid.UUID  `json:"user_id"`
	FeatureId      string     `json:"feature_id"`
	Feature        string     `json:"feature"`
	Input          string     `json:"input,omitempty"`
	Response       string     `json:"response"`
	Status         string     `json:"status"`
	RequestDate    time.Time  `json:"request_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Feedback       *bool      `json:"feedback,omitempty"`
}
