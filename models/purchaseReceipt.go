package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseReceipt struct {
	ID                   uuid.UUID             `json:"id"`
	Number               string                `json:"number"`
	InvoiceDate          time.Time             `json:"invoiceDate"`
	PostingDate          time.Time             `json:"postingDate"`
	DueDate              time.Time             `json:"dueDate"`
	VendorNumber         string                `json:"vendorNumber"`
	VendorName           string                `json:"vendorName"`
	PayToName            string                `json:"payToName"`
	PayToVendorNumber    string                `json:"payToVendorNumber"`
	ShipToName           string                `json:"shipToName"`
	CurrencyCode         string                `json:"currencyCode"`
	OrderNumber          string                `json:"orderNumber"`
	LastModifiedDateTime time.Time             `json:"lastModifiedDateTime"`
	PurchaseReceiptLines []PurchaseReceiptLine `json:"purchaseReceiptLines"`
}

type PurchaseReceiptLine struct {
	ID                  uuid.UUID       `json:"id"`
	DocumentID          uuid.UUID       `json:"documentId"`
	Sequence            int             `json:"sequence"`
	LineType            string          `json:"lineType"`
	LineObjectNumber    string          `json:"lineObjectNumber"`
	Description         string          `json:"description"`
	UnitOfMeasureCode   string          `json:"unitOfMeasureCode"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	Quantity            decimal.Decimal `json:"quantity"`
	DiscountPercent     decimal.Decimal `json:"discountPercent"`
	TaxPercent          decimal.Decimal `json:"taxPercent"`
	ExpectedReceiptDate time.Time       `json:"expectedReceiptDate"`
	Number              string          `json:"number"`
}
