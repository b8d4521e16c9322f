package canonical

import "time"

type Address struct {
	Line1      string `json:"line1" validate:"max=255"`
	Line2      string `json:"line2" validate:"max=255"`
	City       string `json:"city" validate:"max=50"`
	State      string `json:"state" validate:"max=50"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode" validate:"max=20"`
}

type Vendor struct {
	ExternalVendorCode string    `json:"externalVendorCode" validate:"max=50"`
	Name               string    `json:"name"`
	NameOnCheck        string    `json:"nameOnCheck"`
	FedTaxID           string    `json:"fedTaxId"`
	Address            Address   `json:"address"`
	Telephone1         string    `json:"telephone1" validate:"max=20"`
	Email              string    `json:"email"`
	Website            string    `json:"website"`
	Active             bool      `json:"active"`
	LastModifiedDate   time.Time `json:"lastModifiedDate"`
	IsValid            bool      `json:"isValid"`
	ValidText          string    `json:"validText"`
}

type EnterpriseCode struct {
	CodeValue   string `json:"codeValue"`
	Description string `json:"description" validate:"max=50"`
	GroupName   string `json:"groupName"`
	IsActive    bool   `json:"isActive"`
}
