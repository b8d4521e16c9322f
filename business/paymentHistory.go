package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

const minPaymentHistoryDays = 1
const maxPaymentHistoryDays = 30

// GetPaymentHistory returns qualifying payment lines from the last N
// days as history records. Records without an invoice number are
// flagged invalid but stay in the output.
func (bc *Context) GetPaymentHistory(ctx context.Context) result.Result[[]canonical.PaymentHistory] {
	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[[]canonical.PaymentHistory] {
		days := bc.Settings.NumberOfDaysToSyncPayments
		if days < minPaymentHistoryDays {
			days = minPaymentHistoryDays
		}
		if days > maxPaymentHistoryDays {
			days = maxPaymentHistoryDays
		}
		since := bc.Clock.UtcNow().Add(-time.Duration(days) * 24 * time.Hour)

		journals := bc.API.GetAllVendorPaymentJournals(ctx, companyID, &since, true, "")
		return result.Map(journals, func(dynJournals []models.VendorPaymentJournal) []canonical.PaymentHistory {
			histories := []canonical.PaymentHistory{}
			for _, journal := range dynJournals {
				for _, payment := range journal.VendorPayments {
					if !qualifiesForPaymentHistory(payment) {
						continue
					}
					histories = append(histories, mapPaymentHistory(payment))
				}
			}
			flagMissingInvoiceNumbers(histories)
			return histories
		})
	})
}

func flagMissingInvoiceNumbers(histories []canonical.PaymentHistory) {
	for i := range histories {
		for _, invoice := range histories[i].Invoices {
			if strings.TrimSpace(invoice.InvoiceNumber) == "" {
				histories[i].IsValid = false
				histories[i].ValidText = fmt.Sprintf(
					"Error - Required data point(s) not found. No invoice number for payment record with ExternalCode %s and DocumentNumber %s",
					histories[i].ExternalCode, histories[i].PaymentNumber)
				break
			}
		}
	}
}
