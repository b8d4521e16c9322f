package canonical

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrder struct {
	ExternalCode              string              `json:"externalCode"`
	OrderNumber               string              `json:"orderNumber"`
	RequisitionName           string              `json:"requisitionName"`
	VendorExternalCode        string              `json:"vendorExternalCode"`
	BillToCompanyExternalCode string              `json:"billToCompanyExternalCode"`
	ShipToCompanyExternalCode string              `json:"shipToCompanyExternalCode"`
	EndDate                   time.Time           `json:"endDate"`
	ShippingMethod            string              `json:"shippingMethod"`
	Taxes                     decimal.Decimal     `json:"taxes"`
	Discount                  decimal.Decimal     `json:"discount"`
	TotalAmount               decimal.Decimal     `json:"totalAmount"`
	LineItems                 []PurchaseOrderLine `json:"lineItems"`
}

type PurchaseOrderLine struct {
	ExternalCode string          `json:"externalCode"`
	Item         PurchaseItem    `json:"item"`
	Amount       decimal.Decimal `json:"amount"`
	PricePer     decimal.Decimal `json:"pricePer"`
}

type PurchaseItem struct {
	ProductCode         string          `json:"productCode"`
	ProductExternalCode string          `json:"productExternalCode"`
	ProductName         string          `json:"productName"`
	ProductDesc         string          `json:"productDesc"`
	Quantity            decimal.Decimal `json:"quantity"`
	UOM                 string          `json:"uom"`
	PricePer            decimal.Decimal `json:"pricePer"`
}

type MaterialReceipt struct {
	ExternalCode            string          `json:"externalCode"`
	PurchaseOrderNumber     string          `json:"purchaseOrderNumber"`
	PurchaseOrderLineNumber int             `json:"purchaseOrderLineNumber"`
	ProductCode             string          `json:"productCode"`
	ProductName             string          `json:"productName"`
	UOM                     string          `json:"uom"`
	DateReceived            time.Time       `json:"dateReceived"`
	Quantity                decimal.Decimal `json:"quantity"`
	BillOfLadingNumber      string          `json:"billOfLadingNumber"`
}
