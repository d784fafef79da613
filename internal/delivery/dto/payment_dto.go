package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// Response DTOs

type PaymentResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Notice      *Notice         `json:"notice,omitempty"`
	RedirectURL string          `json:"redirect_url,omitempty"`
}

type PlanResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	OldPrice decimal.Decimal `json:"old_price"`
	NewPrice decimal.Decimal `json:"new_price"`
	Period   string          `json:"period"`
	Discount string          `json:"discount"`
	Features []string        `json:"features"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}
