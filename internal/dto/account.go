package dto

import (
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Kind         domain.AccountKind `json:"kind"`
	OwnerID      string             `json:"ownerID"`
	Balance      decimal.Decimal    `json:"balance"`
	LastModified time.Time          `json:"lastModified"`
	IsActive     bool               `json:"isActive"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Kind:         acc.Kind,
		OwnerID:      acc.OwnerID,
		Balance:      acc.Balance,
		LastModified: acc.LastModified,
		IsActive:     acc.IsActive,
		CreatedAt:    acc.CreatedAt,
		CreatedBy:    acc.CreatedBy,
	}
}

func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=MEMBER SUBSCRIBER VEHICLE"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALL"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountHistoryResponse is one monthly snapshot.
type AccountHistoryResponse struct {
	Period  time.Time       `json:"period"`
	Balance decimal.Decimal `json:"balance"`
}

func ToAccountHistoryResponse(history []domain.AccountHistory) []AccountHistoryResponse {
	res := make([]AccountHistoryResponse, len(history))
	for i, h := range history {
		res[i] = AccountHistoryResponse{Period: h.Period, Balance: h.Balance}
	}
	return res
}
