package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID                   uuid.UUID       `json:"id"`
	Number               string          `json:"number"`
	DisplayName          string          `json:"displayName"`
	Category             string          `json:"category"`
	SubCategory          string          `json:"subCategory"`
	Blocked              bool            `json:"blocked"`
	AccountType          string          `json:"accountType"`
	DirectPosting        bool            `json:"directPosting"`
	NetChange            decimal.Decimal `json:"netChange"`
	LastModifiedDateTime time.Time       `json:"lastModifiedDateTime"`
}

type Dimension struct {
	ID                   uuid.UUID        `json:"id"`
	Code                 string           `json:"code"`
	DisplayName          string           `json:"displayName"`
	LastModifiedDateTime time.Time        `json:"lastModifiedDateTime"`
	DimensionValues      []DimensionValue `json:"dimensionValues"`
}

type DimensionValue struct {
	ID                   uuid.UUID `json:"id"`
	Code                 string    `json:"code"`
	DimensionID          uuid.UUID `json:"dimensionId"`
	DisplayName          string    `json:"displayName"`
	LastModifiedDateTime time.Time `json:"lastModifiedDateTime"`
}
