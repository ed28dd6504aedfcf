package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // operator username
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Status selects rows by their soft-delete flag.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusAll      Status = "ALL"
)

// ParseStatus maps a query value to a Status. Empty means StatusActive.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "":
		return StatusActive, true
	case StatusActive, StatusInactive, StatusAll:
		return Status(s), true
	}
	return "", false
}

// Matches reports whether a row with the given is_active flag passes the filter.
func (s Status) Matches(isActive bool) bool {
	switch s {
	case StatusActive:
		return isActive
	case StatusInactive:
		return !isActive
	}
	return true
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of t's month at midnight UTC.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
