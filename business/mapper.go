package business

import (
	"fmt"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const accountingCodesGroupName = "Accounting Codes"

// batch codes embed the run timestamp in this layout
const batchCodeTimeFormat = "02-Jan-2006-15-04-05"

func mapVendor(dyn models.Vendor) canonical.Vendor {
	// Dynamics renders the blocked enum with an escaped-space sentinel;
	// after cleanup, a blank value means the vendor is active.
	blocked := strings.TrimSpace(strings.ReplaceAll(dyn.Blocked, "_x0020_", " "))

	return canonical.Vendor{
		ExternalVendorCode: dyn.ID.String(),
		Name:               dyn.DisplayName,
		NameOnCheck:        dyn.DisplayName,
		FedTaxID:           dyn.TaxRegistrationNumber,
		Address: canonical.Address{
			Line1:      dyn.AddressLine1,
			Line2:      dyn.AddressLine2,
			City:       dyn.City,
			State:      dyn.State,
			Country:    dyn.Country,
			PostalCode: dyn.PostalCode,
		},
		Telephone1:       dyn.PhoneNumber,
		Email:            dyn.Email,
		Website:          dyn.Website,
		Active:           blocked == "",
		LastModifiedDate: dyn.LastModifiedDateTime,
		IsValid:          true,
	}
}

func mapAccount(dyn models.Account) canonical.EnterpriseCode {
	return canonical.EnterpriseCode{
		CodeValue:   dyn.ID.String(),
		Description: fmt.Sprintf("%s : %s", dyn.Number, dyn.DisplayName),
		GroupName:   accountingCodesGroupName,
		IsActive:    !dyn.Blocked,
	}
}

// mapDimension flattens a dimension into one code per dimension value,
// grouped under the dimension display name.
func mapDimension(dyn models.Dimension) []canonical.EnterpriseCode {
	codes := make([]canonical.EnterpriseCode, 0, len(dyn.DimensionValues))
	for _, value := range dyn.DimensionValues {
		codes = append(codes, canonical.EnterpriseCode{
			CodeValue:   strings.TrimSpace(value.Code),
			Description: strings.TrimSpace(value.DisplayName),
			GroupName:   strings.TrimSpace(dyn.DisplayName),
			IsActive:    true,
		})
	}
	return codes
}

func mapPurchaseOrder(dyn models.PurchaseOrder) canonical.PurchaseOrder {
	order := canonical.PurchaseOrder{
		ExternalCode:       dyn.ID.String(),
		OrderNumber:        dyn.Number,
		RequisitionName:    dyn.Purchaser,
		VendorExternalCode: dyn.VendorID.String(),
		EndDate:            dyn.RequestedReceiptDate,
		ShippingMethod:     dyn.ShipmentMethodID.String(),
		Taxes:              dyn.TotalTaxAmount,
		Discount:           dyn.DiscountAmount,
		TotalAmount:        dyn.TotalAmountIncludingTax,
	}

	if len(dyn.PurchaseOrderLines) > 0 {
		locationID := purchaseOrderLocationID(dyn.PurchaseOrderLines)
		order.BillToCompanyExternalCode = locationID.String()
		order.ShipToCompanyExternalCode = locationID.String()
	}

	order.LineItems = make([]canonical.PurchaseOrderLine, 0, len(dyn.PurchaseOrderLines))
	for _, line := range dyn.PurchaseOrderLines {
		order.LineItems = append(order.LineItems, canonical.PurchaseOrderLine{
			ExternalCode: line.ID.String(),
			Item: canonical.PurchaseItem{
				ProductDesc: line.Description,
				ProductCode: line.ItemID.String(),
				Quantity:    line.Quantity,
				UOM:         line.UnitOfMeasureCode,
			},
			Amount:   line.AmountIncludingTax,
			PricePer: line.DirectUnitCost,
		})
	}
	return order
}

// purchaseOrderLocationID picks the location from the first line that
// carries one; uuid.Nil when no line does.
func purchaseOrderLocationID(lines []models.PurchaseOrderLine) uuid.UUID {
	for _, line := range lines {
		if line.LocationID != uuid.Nil {
			return line.LocationID
		}
	}
	return uuid.Nil
}

// mapPurchaseReceipt expands a receipt into one material receipt per
// receipt line.
func mapPurchaseReceipt(dyn models.PurchaseReceipt) []canonical.MaterialReceipt {
	receipts := make([]canonical.MaterialReceipt, 0, len(dyn.PurchaseReceiptLines))
	for _, line := range dyn.PurchaseReceiptLines {
		receipts = append(receipts, canonical.MaterialReceipt{
			ExternalCode:            dyn.ID.String(),
			PurchaseOrderNumber:     dyn.OrderNumber,
			PurchaseOrderLineNumber: line.Sequence,
			ProductCode:             line.LineObjectNumber,
			ProductName:             line.Description,
			UOM:                     line.UnitOfMeasureCode,
			DateReceived:            line.ExpectedReceiptDate,
			Quantity:                line.Quantity,
			BillOfLadingNumber:      dyn.Number,
		})
	}
	return receipts
}

// mapPaymentHistory derives the invoice number from the external
// document number; callers flag records where it came back empty.
func mapPaymentHistory(dyn models.VendorPayment) canonical.PaymentHistory {
	return canonical.PaymentHistory{
		ExternalCode:           dyn.ID.String(),
		PaymentNumber:          dyn.DocumentNumber,
		PaymentDate:            dyn.PostingDate,
		PaymentAmount:          dyn.Amount,
		PaymentState:           canonical.PaymentHistoryStateOutstanding,
		RemittanceType:         canonical.RemittanceTypeCheck,
		BatchExternalCode:      fmt.Sprintf("%s-%s-%s", dyn.DocumentNumber, dyn.AppliesToInvoiceNumber, dyn.VendorNumber),
		PayeeExternalCode:      dyn.VendorID.String(),
		PayerBankAccountNumber: "",
		Invoices: []canonical.PaymentHistoryInvoice{{
			InvoiceNumber: dyn.ExternalDocumentNumber,
			InvoiceAmount: dyn.Amount,
		}},
		IsValid: true,
	}
}

func mapPaymentRequest(payment models.VendorPayment,
	journal models.VendorPaymentJournal,
	invoice models.PurchaseInvoice,
	companyInfo models.CompanyInformation,
	batchTime time.Time) canonical.PaymentRequest {

	requestInvoice := canonical.PaymentRequestInvoice{
		InvoiceNumber:      invoice.VendorInvoiceNumber,
		InvoiceDate:        invoice.InvoiceDate,
		InvoiceDueDate:     invoice.DueDate,
		InvoiceGrossAmount: invoice.TotalAmountIncludingTax,
	}
	if invoice.TotalAmountIncludingTax != nil {
		requestInvoice.InvoiceNetAmount = *invoice.TotalAmountIncludingTax
	}

	request := canonical.PaymentRequest{
		BatchExternalCode:   fmt.Sprintf("%s--%s", journal.Code, batchTime.Format(batchCodeTimeFormat)),
		PaymentExternalCode: payment.ID.String(),
		PaymentNumber:       payment.DocumentNumber,
		PaymentAmount:       payment.Amount,
		PayerExternalCode:   companyInfo.ID.String(),
		PayerName:           companyInfo.DisplayName,
		PayerAddress: canonical.Address{
			Line1:      companyInfo.AddressLine1,
			Line2:      companyInfo.AddressLine2,
			City:       companyInfo.City,
			State:      companyInfo.State,
			PostalCode: companyInfo.PostalCode,
		},
		PayerBankAccountID: journal.BalancingAccountNumber,
		PayeeExternalCode:  payment.VendorNumber,
		PayeeName:          payment.Description,
		PayeeNameOnCheck:   payment.Description,
		PayeeRemitAddress: canonical.Address{
			Line1:      invoice.PayToAddressLine1,
			Line2:      invoice.PayToAddressLine2,
			City:       invoice.PayToCity,
			State:      invoice.PayToState,
			PostalCode: invoice.PayToPostCode,
		},
		Invoices: []canonical.PaymentRequestInvoice{requestInvoice},
		IsValid:  true,
	}
	if payment.PostingDate != nil {
		request.PaymentDate = *payment.PostingDate
	}
	if invoice.Vendor != nil {
		request.PayeeAddress = canonical.Address{
			Line1:      invoice.Vendor.AddressLine1,
			Line2:      invoice.Vendor.AddressLine2,
			City:       invoice.Vendor.City,
			State:      invoice.Vendor.State,
			PostalCode: invoice.Vendor.PostalCode,
		}
	}
	return request
}

// exportInvoice pairs a mapped purchase invoice with the lines to be
// created under it.
type exportInvoice struct {
	Invoice models.PurchaseInvoice
	Lines   []models.PurchaseInvoiceLine
}

// mapInvoiceForExport converts a canonical invoice into the purchase
// invoice and lines to create remotely. The vendor external code must
// be the Dynamics vendor id.
func mapInvoiceForExport(invoice *canonical.Invoice, currencyCode string) result.Result[exportInvoice] {
	vendorID, err := uuid.Parse(invoice.VendorExternalCode)
	if err != nil {
		return result.Err[exportInvoice]("error mapping invoice: vendorExternalCode must be a valid UUID")
	}

	out := models.PurchaseInvoice{
		VendorInvoiceNumber:     invoice.InvoiceNumber,
		InvoiceDate:             invoice.InvoiceDate,
		PostingDate:             invoice.PostingDate,
		DueDate:                 invoice.DueDate,
		VendorID:                &vendorID,
		PayToVendorID:           &vendorID,
		TotalAmountIncludingTax: &invoice.Amount,
		CurrencyCode:            currencyCode,
		ShipToName:              invoice.CompanyName,
	}

	// the host encodes "<vendor number> | <vendor name>" in one field
	parts := strings.Split(invoice.VendorName, "|")
	out.VendorNumber = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		out.VendorName = strings.TrimSpace(parts[1])
	}

	if invoice.CompanyAddress != nil {
		out.ShipToAddressLine1 = invoice.CompanyAddress.Line1
		out.ShipToAddressLine2 = invoice.CompanyAddress.Line2
		out.ShipToCity = invoice.CompanyAddress.City
		out.ShipToState = invoice.CompanyAddress.State
		out.ShipToCountry = invoice.CompanyAddress.Country
		out.ShipToPostCode = invoice.CompanyAddress.PostalCode
	}

	lines := make([]models.PurchaseInvoiceLine, 0, len(invoice.Lines))
	for _, line := range invoice.Lines {
		if line == nil {
			continue
		}
		amount := line.Amount
		mapped := models.PurchaseInvoiceLine{
			Sequence:           line.LineNumber,
			AmountIncludingTax: &amount,
			Description:        exportLineDescription(invoice, line),
		}
		if line.GLCode != nil {
			if accountID, parseErr := uuid.Parse(line.GLCode.CodeValue); parseErr == nil {
				mapped.AccountID = &accountID
			}
		}
		if line.Item != nil {
			if itemID, parseErr := uuid.Parse(line.Item.ProductExternalCode); parseErr == nil {
				mapped.ItemID = &itemID
			}
			unitCost := line.Item.PricePer
			quantity := line.Item.Quantity
			mapped.UnitCost = &unitCost
			mapped.Quantity = &quantity
			mapped.UnitOfMeasureCode = line.Item.UOM
		}
		lines = append(lines, mapped)
	}

	return result.Ok(exportInvoice{Invoice: out, Lines: lines})
}

// exportLineDescription joins account number, reference and product
// name with '|', skipping blanks.
func exportLineDescription(invoice *canonical.Invoice, line *canonical.InvoiceLine) string {
	var parts []string
	if strings.TrimSpace(invoice.AccountNumber) != "" {
		parts = append(parts, invoice.AccountNumber)
	}
	if strings.TrimSpace(invoice.Reference) != "" {
		parts = append(parts, invoice.Reference)
	}
	if line.Item != nil && strings.TrimSpace(line.Item.ProductName) != "" {
		parts = append(parts, line.Item.ProductName)
	}
	return strings.Join(parts, "|")
}

// qualifiesForPaymentRequest is the payment-line filter for request
// reconciliation; history reuses it minus the invoice reference.
func qualifiesForPaymentRequest(payment models.VendorPayment) bool {
	return qualifiesForPaymentHistory(payment) &&
		strings.TrimSpace(payment.AppliesToInvoiceNumber) != ""
}

func qualifiesForPaymentHistory(payment models.VendorPayment) bool {
	return payment.PostingDate != nil &&
		strings.TrimSpace(payment.DocumentNumber) != "" &&
		payment.Amount.GreaterThan(decimal.Zero)
}
