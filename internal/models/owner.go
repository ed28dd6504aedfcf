package models

// Member is a row of members.
type Member struct {
	MemberID       string `db:"member_id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	DocumentNumber string `db:"document_number"`
	Phone          string `db:"phone"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// Subscriber is a row of subscribers.
type Subscriber struct {
	SubscriberID   string `db:"subscriber_id"`
	Name           string `db:"name"`
	DocumentNumber string `db:"document_number"`
	Phone          string `db:"phone"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// Vehicle is a row of vehicles.
type Vehicle struct {
	VehicleID    string `db:"vehicle_id"`
	LicensePlate string `db:"license_plate"`
	Brand        string `db:"brand"`
	Model        string `db:"model"`
	Year         int    `db:"year"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
