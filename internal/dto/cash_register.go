package dto

import (
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCashRegisterRequest sets the register amount after a physical count.
type UpdateCashRegisterRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type CashRegisterResponse struct {
	CashRegisterID string          `json:"cashRegisterID"`
	Amount         decimal.Decimal `json:"amount"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

func ToCashRegisterResponse(r *domain.CashRegister) CashRegisterResponse {
	return CashRegisterResponse{
		CashRegisterID: r.CashRegisterID,
		Amount:         r.Amount,
		LastUpdatedAt:  r.LastUpdatedAt,
		LastUpdatedBy:  r.LastUpdatedBy,
	}
}
