package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInvoice is both fetched for reconciliation and constructed
// for export; pointer fields with omitempty keep null values out of
// the create request body.
type PurchaseInvoice struct {
	ID                      *uuid.UUID       `json:"id,omitempty"`
	Number                  string           `json:"number,omitempty"`
	InvoiceDate             *time.Time       `json:"invoiceDate,omitempty"`
	PostingDate             *time.Time       `json:"postingDate,omitempty"`
	DueDate                 *time.Time       `json:"dueDate,omitempty"`
	VendorInvoiceNumber     string           `json:"vendorInvoiceNumber,omitempty"`
	VendorID                *uuid.UUID       `json:"vendorId,omitempty"`
	VendorNumber            string           `json:"vendorNumber,omitempty"`
	VendorName              string           `json:"vendorName,omitempty"`
	PayToName               string           `json:"payToName,omitempty"`
	PayToVendorID           *uuid.UUID       `json:"payToVendorId,omitempty"`
	PayToVendorNumber       string           `json:"payToVendorNumber,omitempty"`
	ShipToName              string           `json:"shipToName,omitempty"`
	ShipToAddressLine1      string           `json:"shipToAddressLine1,omitempty"`
	ShipToAddressLine2      string           `json:"shipToAddressLine2,omitempty"`
	ShipToCity              string           `json:"shipToCity,omitempty"`
	ShipToCountry           string           `json:"shipToCountry,omitempty"`
	ShipToState             string           `json:"shipToState,omitempty"`
	ShipToPostCode          string           `json:"shipToPostCode,omitempty"`
	PayToAddressLine1       string           `json:"payToAddressLine1,omitempty"`
	PayToAddressLine2       string           `json:"payToAddressLine2,omitempty"`
	PayToCity               string           `json:"payToCity,omitempty"`
	PayToCountry            string           `json:"payToCountry,omitempty"`
	PayToState              string           `json:"payToState,omitempty"`
	PayToPostCode           string           `json:"payToPostCode,omitempty"`
	CurrencyID              *uuid.UUID       `json:"currencyId,omitempty"`
	CurrencyCode            string           `json:"currencyCode,omitempty"`
	OrderID                 *uuid.UUID       `json:"orderId,omitempty"`
	OrderNumber             string           `json:"orderNumber,omitempty"`
	PricesIncludeTax        bool             `json:"pricesIncludeTax,omitempty"`
	DiscountAmount          *decimal.Decimal `json:"discountAmount,omitempty"`
	TotalAmountExcludingTax *decimal.Decimal `json:"totalAmountExcludingTax,omitempty"`
	TotalTaxAmount          *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	TotalAmountIncludingTax *decimal.Decimal `json:"totalAmountIncludingTax,omitempty"`
	Status                  string           `json:"status,omitempty"`
	LastModifiedDateTime    *time.Time       `json:"lastModifiedDateTime,omitempty"`
	Vendor                  *Vendor          `json:"vendor,omitempty"`
}

type PurchaseInvoiceLine struct {
	ID                  *uuid.UUID       `json:"id,omitempty"`
	DocumentID          *uuid.UUID       `json:"documentId,omitempty"`
	Sequence            int              `json:"sequence,omitempty"`
	ItemID              *uuid.UUID       `json:"itemId,omitempty"`
	AccountID           *uuid.UUID       `json:"accountId,omitempty"`
	LineType            string           `json:"lineType,omitempty"`
	LineObjectNumber    string           `json:"lineObjectNumber,omitempty"`
	Description         string           `json:"description,omitempty"`
	UnitOfMeasureCode   string           `json:"unitOfMeasureCode,omitempty"`
	UnitCost            *decimal.Decimal `json:"unitCost,omitempty"`
	Quantity            *decimal.Decimal `json:"quantity,omitempty"`
	DiscountAmount      *decimal.Decimal `json:"discountAmount,omitempty"`
	TaxPercent          *decimal.Decimal `json:"taxPercent,omitempty"`
	AmountExcludingTax  *decimal.Decimal `json:"amountExcludingTax,omitempty"`
	TotalTaxAmount      *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	AmountIncludingTax  *decimal.Decimal `json:"amountIncludingTax,omitempty"`
	ExpectedReceiptDate *time.Time       `json:"expectedReceiptDate,omitempty"`
	LocationID          *uuid.UUID       `json:"locationId,omitempty"`
}
