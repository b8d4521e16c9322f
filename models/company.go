package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID                uuid.UUID `json:"id"`
	SystemVersion     string    `json:"systemVersion"`
	Name              string    `json:"name"`
	DisplayName       string    `json:"displayName"`
	BusinessProfileID string    `json:"businessProfileId"`
	SystemCreatedAt   time.Time `json:"systemCreatedAt"`
	SystemCreatedBy   string    `json:"systemCreatedBy"`
	SystemModifiedAt  time.Time `json:"systemModifiedAt"`
	SystemModifiedBy  string    `json:"systemModifiedBy"`
}

type CompanyInformation struct {
	ID                         uuid.UUID `json:"id"`
	DisplayName                string    `json:"displayName"`
	AddressLine1               string    `json:"addressLine1"`
	AddressLine2               string    `json:"addressLine2"`
	City                       string    `json:"city"`
	State                      string    `json:"state"`
	Country                    string    `json:"country"`
	PostalCode                 string    `json:"postalCode"`
	PhoneNumber                string    `json:"phoneNumber"`
	FaxNumber                  string    `json:"faxNumber"`
	Email                      string    `json:"email"`
	Website                    string    `json:"website"`
	TaxRegistrationNumber      string    `json:"taxRegistrationNumber"`
	CurrencyCode               string    `json:"currencyCode"`
	CurrentFiscalYearStartDate string    `json:"currentFiscalYearStartDate"`
	Industry                   string    `json:"industry"`
	LastModifiedDateTime       time.Time `json:"lastModifiedDateTime"`
}
