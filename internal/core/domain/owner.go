package domain

// Member is a cooperative member (driver or partner).
type Member struct {
	MemberID       string `json:"memberID"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// Subscriber is a customer with a running account (company or frequent client).
type Subscriber struct {
	SubscriberID   string `json:"subscriberID"`
	Name           string `json:"name"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// Vehicle is a cab operated under the cooperative.
type Vehicle struct {
	VehicleID    string `json:"vehicleID"`
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
