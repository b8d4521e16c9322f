package business

import (
	"context"
	"strings"
	"sync"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

// GetPaymentRequests reconciles payment journal lines against posted
// purchase invoices. Company info, journals and invoices are fetched
// concurrently; all three results are collected before inspection, and
// multiple failures are concatenated into one message.
func (bc *Context) GetPaymentRequests(ctx context.Context) result.Result[[]canonical.PaymentRequest] {
	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.PaymentRequest] {
		var (
			wg          sync.WaitGroup
			companyInfo result.Result[models.CompanyInformation]
			journals    result.Result[[]models.VendorPaymentJournal]
			invoices    result.Result[[]models.PurchaseInvoice]
		)

		wg.Add(3)
		go func() {
			defer wg.Done()
			companyInfo = bc.API.GetCompanyInfo(ctx, companyID)
		}()
		go func() {
			defer wg.Done()
			journals = bc.API.GetAllVendorPaymentJournals(ctx, companyID, nil, true, bc.Settings.PaymentJournalDisplayName)
		}()
		go func() {
			defer wg.Done()
			invoices = bc.API.GetPurchaseInvoices(ctx, companyID, true)
		}()
		wg.Wait()

		var failures []string
		if companyInfo.IsErr() {
			failures = append(failures, companyInfo.Error())
		}
		if journals.IsErr() {
			failures = append(failures, journals.Error())
		}
		if invoices.IsErr() {
			failures = append(failures, invoices.Error())
		}
		if len(failures) > 0 {
			return result.Err[[]canonical.PaymentRequest](strings.Join(failures, "\n"))
		}

		requests := []canonical.PaymentRequest{}
		for _, journal := range journals.Value() {
			for _, payment := range journal.VendorPayments {
				if !qualifiesForPaymentRequest(payment) {
					continue
				}
				invoice, found := matchInvoice(invoices.Value(), payment.AppliesToInvoiceNumber)
				if !found {
					// unmatched lines are skipped, not reported
					continue
				}
				requests = append(requests,
					mapPaymentRequest(payment, journal, invoice, companyInfo.Value(), bc.Clock.UtcNow()))
			}
		}
		return result.Ok(requests)
	})
}

// matchInvoice returns the first invoice whose number equals the
// payment line's applies-to reference.
func matchInvoice(invoices []models.PurchaseInvoice, reference string) (models.PurchaseInvoice, bool) {
	for _, invoice := range invoices {
		if invoice.Number == reference {
			return invoice, true
		}
	}
	return models.PurchaseInvoice{}, false
}
