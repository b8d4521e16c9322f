package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID                    uuid.UUID       `json:"id"`
	Number                string          `json:"number"`
	DisplayName           string          `json:"displayName"`
	AddressLine1          string          `json:"addressLine1"`
	AddressLine2          string          `json:"addressLine2"`
	City                  string          `json:"city"`
	State                 string          `json:"state"`
	Country               string          `json:"country"`
	PostalCode            string          `json:"postalCode"`
	PhoneNumber           string          `json:"phoneNumber"`
	Email                 string          `json:"email"`
	Website               string          `json:"website"`
	TaxRegistrationNumber string          `json:"taxRegistrationNumber"`
	CurrencyID            uuid.UUID       `json:"currencyId"`
	CurrencyCode          string          `json:"currencyCode"`
	Irs1099Code           string          `json:"irs1099Code"`
	PaymentTermsID        uuid.UUID       `json:"paymentTermsId"`
	PaymentMethodID       uuid.UUID       `json:"paymentMethodId"`
	TaxLiable             bool            `json:"taxLiable"`
	Blocked               string          `json:"blocked"`
	Balance               decimal.Decimal `json:"balance"`
	LastModifiedDateTime  time.Time       `json:"lastModifiedDateTime"`
}
