package canonical

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateType marks the per-item outcome of a ledger export.
type UpdateType string

const (
	UpdateTypeNone   UpdateType = ""
	UpdateTypeInsert UpdateType = "Insert"
	UpdateTypeError  UpdateType = "Error"
)

// Invoice is the export input shape handed down by the host.
type Invoice struct {
	InvoiceNumber      string          `json:"invoiceNumber"`
	InvoiceDate        *time.Time      `json:"invoiceDate"`
	PostingDate        *time.Time      `json:"postingDate"`
	DueDate            *time.Time      `json:"dueDate"`
	VendorExternalCode string          `json:"vendorExternalCode"`
	VendorName         string          `json:"vendorName"`
	AccountNumber      string          `json:"accountNumber"`
	Reference          string          `json:"reference"`
	Amount             decimal.Decimal `json:"amount"`
	CompanyName        string          `json:"companyName"`
	CompanyAddress     *Address        `json:"companyAddress"`
	Lines              []*InvoiceLine  `json:"lines"`
	UpdateType         UpdateType      `json:"updateType"`
	ValidText          string          `json:"validText"`
}

type InvoiceLine struct {
	LineNumber int             `json:"lineNumber"`
	GLCode     *EnterpriseCode `json:"glCode"`
	Item       *PurchaseItem   `json:"item"`
	Amount     decimal.Decimal `json:"amount"`
}

// LedgerImportResults partitions an export batch per item.
type LedgerImportResults struct {
	SucceededInvoices []*Invoice `json:"succeededInvoices"`
	FailedInvoices    []*Invoice `json:"failedInvoices"`
}
