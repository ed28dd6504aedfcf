package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementRequest is the body of both create and update. Update replaces every field.
// At most one of the three account ids may be set.
type MovementRequest struct {
	MemberAccountID     string              `json:"memberAccountID" binding:"omitempty,uuid"`
	SubscriberAccountID string              `json:"subscriberAccountID" binding:"omitempty,uuid"`
	VehicleAccountID    string              `json:"vehicleAccountID" binding:"omitempty,uuid"`
	Description         string              `json:"description" binding:"max=255"`
	Amount              decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Date                time.Time           `json:"date" binding:"required"`
	Type                domain.MovementType `json:"type" binding:"required,oneof=ADVANCE WORKSHOP_ORDER FUEL_REIMBURSEMENT PAYROLL_SETTLEMENT OTHER"`
	IsIncome            *bool               `json:"isIncome" binding:"required"`
}

// ToSpec converts the request into a validated domain.MovementSpec.
func (r MovementRequest) ToSpec() (domain.MovementSpec, error) {
	ref, err := domain.NewAccountRef(r.MemberAccountID, r.SubscriberAccountID, r.VehicleAccountID)
	if err != nil {
		return domain.MovementSpec{}, err
	}
	if r.IsIncome == nil {
		return domain.MovementSpec{}, fmt.Errorf("isIncome is required")
	}
	spec := domain.MovementSpec{
		Account:     ref,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        domain.StartOfDay(r.Date),
		Type:        r.Type,
		IsIncome:    *r.IsIncome,
	}
	if err := spec.Validate(); err != nil {
		return domain.MovementSpec{}, err
	}
	return spec, nil
}

// MovementResponse defines the data returned for a cash or non-cash movement.
type MovementResponse struct {
	MovementID          string              `json:"movementID"`
	Kind                domain.MovementKind `json:"kind"`
	MemberAccountID     string              `json:"memberAccountID,omitempty"`
	SubscriberAccountID string              `json:"subscriberAccountID,omitempty"`
	VehicleAccountID    string              `json:"vehicleAccountID,omitempty"`
	Description         string              `json:"description"`
	Amount              decimal.Decimal     `json:"amount"`
	Date                time.Time           `json:"date"`
	Type                domain.MovementType `json:"type"`
	IsIncome            bool                `json:"isIncome"`
	CashRegisterID      string              `json:"cashRegisterID,omitempty"`
	IsActive            bool                `json:"isActive"`
	CreatedAt           time.Time           `json:"createdAt"`
	CreatedBy           string              `json:"createdBy"`
	LastUpdatedAt       time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy       string              `json:"lastUpdatedBy"`
}

func ToMovementResponse(m *domain.Movement) MovementResponse {
	memberID, subscriberID, vehicleID := m.Account.IDs()
	return MovementResponse{
		MovementID:          m.MovementID,
		Kind:                m.Kind,
		MemberAccountID:     memberID,
		SubscriberAccountID: subscriberID,
		VehicleAccountID:    vehicleID,
		Description:         m.Description,
		Amount:              m.Amount,
		Date:                m.Date,
		Type:                m.Type,
		IsIncome:            m.IsIncome,
		CashRegisterID:      m.CashRegisterID,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		CreatedBy:           m.CreatedBy,
		LastUpdatedAt:       m.LastUpdatedAt,
		LastUpdatedBy:       m.LastUpdatedBy,
	}
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	AccountID string    `form:"accountID" binding:"omitempty,uuid"`
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
	Status    string    `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALL"`
	Limit     int       `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string    `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}

func ToListMovementsResponse(movements []domain.Movement, nextToken string) ListMovementsResponse {
	res := ListMovementsResponse{Movements: make([]MovementResponse, len(movements)), NextToken: nextToken}
	for i := range movements {
		res.Movements[i] = ToMovementResponse(&movements[i])
	}
	return res
}
