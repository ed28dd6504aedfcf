package dto

import (
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type AdvanceResponse struct {
	AdvanceID       string              `json:"advanceID"`
	MovementID      string              `json:"movementID"`
	MovementKind    domain.MovementKind `json:"movementKind"`
	MemberAccountID string              `json:"memberAccountID"`
	Date            time.Time           `json:"date"`
	Amount          decimal.Decimal     `json:"amount"`
	Description     string              `json:"description"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
}

func ToAdvanceResponse(a *domain.Advance) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID:       a.AdvanceID,
		MovementID:      a.MovementID,
		MovementKind:    a.MovementKind,
		MemberAccountID: a.MemberAccountID,
		Date:            a.Date,
		Amount:          a.Amount,
		Description:     a.Description,
		CreatedAt:       a.CreatedAt,
		CreatedBy:       a.CreatedBy,
	}
}

func ToListAdvanceResponse(advances []domain.Advance) []AdvanceResponse {
	res := make([]AdvanceResponse, len(advances))
	for i := range advances {
		res[i] = ToAdvanceResponse(&advances[i])
	}
	return res
}

// ListAdvancesParams defines query parameters for listing advances.
type ListAdvancesParams struct {
	MemberAccountID string    `form:"memberAccountID" binding:"omitempty,uuid"`
	From            time.Time `form:"from" time_format:"2006-01-02"`
	To              time.Time `form:"to" time_format:"2006-01-02"`
}
