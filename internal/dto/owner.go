package dto

import (
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
)

// ListOwnersParams defines query parameters shared by member, subscriber and vehicle listings.
type ListOwnersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALL"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

type CreateMemberRequest struct {
	FirstName      string `json:"firstName" binding:"required,max=100"`
	LastName       string `json:"lastName" binding:"required,max=100"`
	DocumentNumber string `json:"documentNumber" binding:"required,max=32"`
	Phone          string `json:"phone" binding:"max=32"`
}

// UpdateMemberRequest uses pointers to distinguish between zero-value updates and fields not provided.
type UpdateMemberRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
}

type MemberResponse struct {
	MemberID       string           `json:"memberID"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	DocumentNumber string           `json:"documentNumber"`
	Phone          string           `json:"phone"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	Account        *AccountResponse `json:"account,omitempty"`
}

func ToMemberResponse(m *domain.Member, acc *domain.Account) MemberResponse {
	res := MemberResponse{
		MemberID:       m.MemberID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DocumentNumber: m.DocumentNumber,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
	if acc != nil {
		a := ToAccountResponse(acc)
		res.Account = &a
	}
	return res
}

type CreateSubscriberRequest struct {
	Name           string `json:"name" binding:"required,max=150"`
	DocumentNumber string `json:"documentNumber" binding:"required,max=32"`
	Phone          string `json:"phone" binding:"max=32"`
}

type UpdateSubscriberRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=150"`
	Phone *string `json:"phone" binding:"omitempty,max=32"`
}

type SubscriberResponse struct {
	SubscriberID   string           `json:"subscriberID"`
	Name           string           `json:"name"`
	DocumentNumber string           `json:"documentNumber"`
	Phone          string           `json:"phone"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	Account        *AccountResponse `json:"account,omitempty"`
}

func ToSubscriberResponse(s *domain.Subscriber, acc *domain.Account) SubscriberResponse {
	res := SubscriberResponse{
		SubscriberID:   s.SubscriberID,
		Name:           s.Name,
		DocumentNumber: s.DocumentNumber,
		Phone:          s.Phone,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
	}
	if acc != nil {
		a := ToAccountResponse(acc)
		res.Account = &a
	}
	return res
}

type CreateVehicleRequest struct {
	LicensePlate string `json:"licensePlate" binding:"required,max=16"`
	Brand        string `json:"brand" binding:"required,max=64"`
	Model        string `json:"model" binding:"required,max=64"`
	Year         int    `json:"year" binding:"required,min=1950,max=2100"`
}

type UpdateVehicleRequest struct {
	Brand *string `json:"brand" binding:"omitempty,min=1,max=64"`
	Model *string `json:"model" binding:"omitempty,min=1,max=64"`
	Year  *int    `json:"year" binding:"omitempty,min=1950,max=2100"`
}

type VehicleResponse struct {
	VehicleID    string           `json:"vehicleID"`
	LicensePlate string           `json:"licensePlate"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	IsActive     bool             `json:"isActive"`
	CreatedAt    time.Time        `json:"createdAt"`
	Account      *AccountResponse `json:"account,omitempty"`
}

func ToVehicleResponse(v *domain.Vehicle, acc *domain.Account) VehicleResponse {
	res := VehicleResponse{
		VehicleID:    v.VehicleID,
		LicensePlate: v.LicensePlate,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
	}
	if acc != nil {
		a := ToAccountResponse(acc)
		res.Account = &a
	}
	return res
}
