package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorPaymentJournal struct {
	ID                     uuid.UUID       `json:"id"`
	Code                   string          `json:"code"`
	DisplayName            string          `json:"displayName"`
	BalancingAccountID     uuid.UUID       `json:"balancingAccountId"`
	BalancingAccountNumber string          `json:"balancingAccountNumber"`
	LastModifiedDateTime   time.Time       `json:"lastModifiedDateTime"`
	VendorPayments         []VendorPayment `json:"vendorPayments"`
}

type VendorPayment struct {
	ID                     uuid.UUID       `json:"id"`
	JournalID              uuid.UUID       `json:"journalId"`
	JournalDisplayName     string          `json:"journalDisplayName"`
	LineNumber             int             `json:"lineNumber"`
	VendorID               uuid.UUID       `json:"vendorId"`
	VendorNumber           string          `json:"vendorNumber"`
	PostingDate            *time.Time      `json:"postingDate"`
	DocumentNumber         string          `json:"documentNumber"`
	ExternalDocumentNumber string          `json:"externalDocumentNumber"`
	Amount                 decimal.Decimal `json:"amount"`
	AppliesToInvoiceID     uuid.UUID       `json:"appliesToInvoiceId"`
	AppliesToInvoiceNumber string          `json:"appliesToInvoiceNumber"`
	Description            string          `json:"description"`
	Comment                string          `json:"comment"`
	LastModifiedDateTime   time.Time       `json:"lastModifiedDateTime"`
}
