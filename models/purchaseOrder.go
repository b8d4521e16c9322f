package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseOrder struct {
	ID                      uuid.UUID           `json:"id"`
	Number                  string              `json:"number"`
	OrderDate               time.Time           `json:"orderDate"`
	PostingDate             time.Time           `json:"postingDate"`
	VendorID                uuid.UUID           `json:"vendorId"`
	VendorNumber            string              `json:"vendorNumber"`
	VendorName              string              `json:"vendorName"`
	PayToName               string              `json:"payToName"`
	PayToVendorID           uuid.UUID           `json:"payToVendorId"`
	ShipToName              string              `json:"shipToName"`
	CurrencyID              uuid.UUID           `json:"currencyId"`
	CurrencyCode            string              `json:"currencyCode"`
	PricesIncludeTax        bool                `json:"pricesIncludeTax"`
	PaymentTermsID          uuid.UUID           `json:"paymentTermsId"`
	ShipmentMethodID        uuid.UUID           `json:"shipmentMethodId"`
	Purchaser               string              `json:"purchaser"`
	RequestedReceiptDate    time.Time           `json:"requestedReceiptDate"`
	DiscountAmount          decimal.Decimal     `json:"discountAmount"`
	TotalAmountExcludingTax decimal.Decimal     `json:"totalAmountExcludingTax"`
	TotalTaxAmount          decimal.Decimal     `json:"totalTaxAmount"`
	TotalAmountIncludingTax decimal.Decimal     `json:"totalAmountIncludingTax"`
	FullyReceived           bool                `json:"fullyReceived"`
	Status                  string              `json:"status"`
	LastModifiedDateTime    time.Time           `json:"lastModifiedDateTime"`
	PurchaseOrderLines      []PurchaseOrderLine `json:"purchaseOrderLines"`
}

type PurchaseOrderLine struct {
	ID                  uuid.UUID       `json:"id"`
	DocumentID          uuid.UUID       `json:"documentId"`
	Sequence            int             `json:"sequence"`
	ItemID              uuid.UUID       `json:"itemId"`
	AccountID           uuid.UUID       `json:"accountId"`
	LineType            string          `json:"lineType"`
	LineObjectNumber    string          `json:"lineObjectNumber"`
	Description         string          `json:"description"`
	UnitOfMeasureCode   string          `json:"unitOfMeasureCode"`
	Quantity            decimal.Decimal `json:"quantity"`
	DirectUnitCost      decimal.Decimal `json:"directUnitCost"`
	DiscountAmount      decimal.Decimal `json:"discountAmount"`
	TaxPercent          decimal.Decimal `json:"taxPercent"`
	AmountExcludingTax  decimal.Decimal `json:"amountExcludingTax"`
	TotalTaxAmount      decimal.Decimal `json:"totalTaxAmount"`
	AmountIncludingTax  decimal.Decimal `json:"amountIncludingTax"`
	ExpectedReceiptDate time.Time       `json:"expectedReceiptDate"`
	ReceivedQuantity    decimal.Decimal `json:"receivedQuantity"`
	InvoicedQuantity    decimal.Decimal `json:"invoicedQuantity"`
	LocationID          uuid.UUID       `json:"locationId"`
}
