package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind names which kind of owner an account belongs to.
type AccountKind string

const (
	AccountKindMember     AccountKind = "MEMBER"
	AccountKindSubscriber AccountKind = "SUBSCRIBER"
	AccountKindVehicle    AccountKind = "VEHICLE"
)

// IsValid reports whether k is one of the known account kinds.
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindMember, AccountKindSubscriber, AccountKindVehicle:
		return true
	}
	return false
}

// Account is the balance-bearing record of a member, subscriber or vehicle.
// Balance only changes through the balance engine.
type Account struct {
	AccountID    string          `json:"accountID"`
	Kind         AccountKind     `json:"kind"`
	OwnerID      string          `json:"ownerID"`
	Balance      decimal.Decimal `json:"balance"`
	LastModified time.Time       `json:"lastModified"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	Kind   AccountKind // empty means any kind
	Status Status
}

// AccountHistory is a monthly balance snapshot.
type AccountHistory struct {
	AccountHistoryID string          `json:"accountHistoryID"`
	AccountID        string          `json:"accountID"`
	Period           time.Time       `json:"period"`
	Balance          decimal.Decimal `json:"balance"`
	CreatedAt        time.Time       `json:"createdAt"`
}
