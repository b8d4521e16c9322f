package canonical

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentHistoryState string

const (
	PaymentHistoryStateOutstanding PaymentHistoryState = "Outstanding"
	PaymentHistoryStateCleared     PaymentHistoryState = "Cleared"
	PaymentHistoryStateVoided      PaymentHistoryState = "Voided"
)

type RemittanceType string

const (
	RemittanceTypeCheck RemittanceType = "Check"
	RemittanceTypeACH   RemittanceType = "ACH"
)

type PaymentHistory struct {
	ExternalCode           string                  `json:"externalCode"`
	PaymentNumber          string                  `json:"paymentNumber"`
	PaymentDate            *time.Time              `json:"paymentDate"`
	PaymentAmount          decimal.Decimal         `json:"paymentAmount"`
	PaymentState           PaymentHistoryState     `json:"paymentState"`
	RemittanceType         RemittanceType          `json:"remittanceType"`
	BatchExternalCode      string                  `json:"batchExternalCode"`
	PayeeExternalCode      string                  `json:"payeeExternalCode"`
	PayerBankAccountNumber string                  `json:"payerBankAccountNumber"`
	Invoices               []PaymentHistoryInvoice `json:"invoices"`
	IsValid                bool                    `json:"isValid"`
	ValidText              string                  `json:"validText"`
}

type PaymentHistoryInvoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount"`
}

type PaymentRequest struct {
	BatchExternalCode   string                  `json:"batchExternalCode"`
	PaymentExternalCode string                  `json:"paymentExternalCode"`
	PaymentNumber       string                  `json:"paymentNumber"`
	PaymentDate         time.Time               `json:"paymentDate"`
	PaymentAmount       decimal.Decimal         `json:"paymentAmount"`
	PayerExternalCode   string                  `json:"payerExternalCode"`
	PayerName           string                  `json:"payerName"`
	PayerAddress        Address                 `json:"payerAddress"`
	PayerBankAccountID  string                  `json:"payerBankAccountId"`
	PayeeExternalCode   string                  `json:"payeeExternalCode"`
	PayeeName           string                  `json:"payeeName"`
	PayeeNameOnCheck    string                  `json:"payeeNameOnCheck"`
	PayeeAddress        Address                 `json:"payeeAddress"`
	PayeeRemitAddress   Address                 `json:"payeeRemitAddress"`
	Invoices            []PaymentRequestInvoice `json:"invoices"`
	IsValid             bool                    `json:"isValid"`
	ValidText           string                  `json:"validText"`
}

type PaymentRequestInvoice struct {
	InvoiceNumber      string           `json:"invoiceNumber"`
	InvoiceDate        *time.Time       `json:"invoiceDate"`
	InvoiceDueDate     *time.Time       `json:"invoiceDueDate"`
	InvoiceGrossAmount *decimal.Decimal `json:"invoiceGrossAmount"`
	InvoiceNetAmount   decimal.Decimal  `json:"invoiceNetAmount"`
}
