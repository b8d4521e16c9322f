package business

import (
	"context"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

// ExportInvoice creates the purchase invoice remotely, then its lines
// one by one. The first line failure aborts the rest; already-created
// remote records are not rolled back.
func (bc *Context) ExportInvoice(ctx context.Context, invoice *canonical.Invoice) result.Result[*canonical.Invoice] {
	return result.Bind(bc.companyID(ctx), func(companyID uuid.UUID) result.Result[*canonical.Invoice] {
		mapped := mapInvoiceForExport(invoice, bc.Settings.CurrencyCodeGroupName)

		created := result.Bind(mapped, func(export exportInvoice) result.Result[result.Unit] {
			parent := bc.API.CreatePurchaseInvoice(ctx, companyID, export.Invoice)
			return result.Bind(parent, func(remote models.PurchaseInvoice) result.Result[result.Unit] {
				if remote.ID == nil {
					return result.ErrUnit("create purchase invoice response is missing an id")
				}
				for _, line := range export.Lines {
					if out := bc.API.CreatePurchaseInvoiceLine(ctx, companyID, *remote.ID, line); out.IsErr() {
						return result.ErrUnit(out.Error())
					}
				}
				return result.OkUnit()
			})
		})

		return result.Map(created, func(result.Unit) *canonical.Invoice {
			return invoice
		})
	})
}

// ImportLedger exports a batch and partitions it per item; a failed
// item gets its failure message recorded and does not stop the rest.
func (bc *Context) ImportLedger(ctx context.Context, invoices []*canonical.Invoice) canonical.LedgerImportResults {
	var results canonical.LedgerImportResults
	for _, invoice := range invoices {
		if invoice == nil {
			continue
		}
		if out := bc.ExportInvoice(ctx, invoice); out.IsErr() {
			invoice.UpdateType = canonical.UpdateTypeError
			invoice.ValidText = out.Error()
			results.FailedInvoices = append(results.FailedInvoices, invoice)
			continue
		}
		invoice.UpdateType = canonical.UpdateTypeInsert
		results.SucceededInvoices = append(results.SucceededInvoices, invoice)
	}
	return results
}
