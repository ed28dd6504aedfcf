package domain

import "fmt"

// AccountRef is the optional account a movement points at.
// The zero value means the movement has no account.
type AccountRef struct {
	Kind      AccountKind
	AccountID string
}

// NoAccount is the empty reference.
var NoAccount = AccountRef{}

// IsNone reports whether the reference points at no account.
func (r AccountRef) IsNone() bool {
	return r.AccountID == ""
}

func (r AccountRef) String() string {
	if r.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s:%s", r.Kind, r.AccountID)
}

// NewAccountRef builds a reference from the three optional wire ids.
// More than one non-empty id returns ErrMultipleAccounts.
func NewAccountRef(memberAccountID, subscriberAccountID, vehicleAccountID string) (AccountRef, error) {
	ref := NoAccount
	set := 0
	if memberAccountID != "" {
		ref = AccountRef{Kind: AccountKindMember, AccountID: memberAccountID}
		set++
	}
	if subscriberAccountID != "" {
		ref = AccountRef{Kind: AccountKindSubscriber, AccountID: subscriberAccountID}
		set++
	}
	if vehicleAccountID != "" {
		ref = AccountRef{Kind: AccountKindVehicle, AccountID: vehicleAccountID}
		set++
	}
	if set > 1 {
		return NoAccount, ErrMultipleAccounts
	}
	return ref, nil
}

// IDs splits the reference back into the three wire ids.
func (r AccountRef) IDs() (memberAccountID, subscriberAccountID, vehicleAccountID string) {
	switch r.Kind {
	case AccountKindMember:
		memberAccountID = r.AccountID
	case AccountKindSubscriber:
		subscriberAccountID = r.AccountID
	case AccountKindVehicle:
		vehicleAccountID = r.AccountID
	}
	return
}
