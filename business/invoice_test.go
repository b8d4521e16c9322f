package business

import (
	"context"
	"testing"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func exportableInvoice(lines int) *canonical.Invoice {
	invoice := &canonical.Invoice{
		InvoiceNumber:      "INV-100",
		VendorExternalCode: uuid.NewString(),
		VendorName:         "V0001 | Fabrikam",
		Amount:             decimal.NewFromInt(250),
		CompanyName:        "CRONUS",
	}
	for i := 1; i <= lines; i++ {
		invoice.Lines = append(invoice.Lines, &canonical.InvoiceLine{
			LineNumber: i * 10000,
			Amount:     decimal.NewFromInt(125),
		})
	}
	return invoice
}

func TestExportInvoice_CreatesParentThenLines(t *testing.T) {
	remoteID := uuid.New()
	api := newFakeAPI()
	api.createdInvoice = result.Ok(models.PurchaseInvoice{ID: &remoteID})
	bc := newTestContext(api, syncstate.NewMemStore())

	out := bc.ExportInvoice(context.Background(), exportableInvoice(2))
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	if !api.called("CreatePurchaseInvoice") {
		t.Fatal("parent invoice was never created")
	}
	if len(api.createdLines) != 2 {
		t.Fatalf("expected 2 lines created, got %d", len(api.createdLines))
	}
	if api.createdLines[0].Sequence != 10000 {
		t.Fatalf("unexpected first line: %+v", api.createdLines[0])
	}
}

func TestExportInvoice_FirstLineFailureAbortsRemaining(t *testing.T) {
	remoteID := uuid.New()
	api := newFakeAPI()
	api.createdInvoice = result.Ok(models.PurchaseInvoice{ID: &remoteID})
	api.createLine = func(line models.PurchaseInvoiceLine) result.Result[models.PurchaseInvoiceLine] {
		if line.Sequence == 10000 {
			return result.Err[models.PurchaseInvoiceLine]("Bad Request: line rejected")
		}
		return result.Ok(line)
	}
	bc := newTestContext(api, syncstate.NewMemStore())

	out := bc.ExportInvoice(context.Background(), exportableInvoice(3))
	if out.IsOk() {
		t.Fatal("expected failure when a line create fails")
	}
	if len(api.createdLines) != 1 {
		t.Fatalf("remaining lines should not be attempted, got %d creates", len(api.createdLines))
	}
}

func TestExportInvoice_BadVendorCodeFailsBeforeAnyCreate(t *testing.T) {
	api := newFakeAPI()
	bc := newTestContext(api, syncstate.NewMemStore())

	invoice := exportableInvoice(1)
	invoice.VendorExternalCode = "not-a-uuid"

	out := bc.ExportInvoice(context.Background(), invoice)
	if out.IsOk() {
		t.Fatal("expected failure on a non-UUID vendor external code")
	}
	if api.called("CreatePurchaseInvoice") {
		t.Fatal("nothing should be created when mapping fails")
	}
}

func TestImportLedger_PartitionsPerItem(t *testing.T) {
	remoteID := uuid.New()
	api := newFakeAPI()
	api.createdInvoice = result.Ok(models.PurchaseInvoice{ID: &remoteID})
	bc := newTestContext(api, syncstate.NewMemStore())

	good := exportableInvoice(1)
	bad := exportableInvoice(1)
	bad.VendorExternalCode = "not-a-uuid"

	results := bc.ImportLedger(context.Background(), []*canonical.Invoice{good, bad})
	if len(results.SucceededInvoices) != 1 || len(results.FailedInvoices) != 1 {
		t.Fatalf("expected 1/1 partition, got %d/%d",
			len(results.SucceededInvoices), len(results.FailedInvoices))
	}
	if good.UpdateType != canonical.UpdateTypeInsert {
		t.Fatalf("succeeded invoice should be marked Insert, got %q", good.UpdateType)
	}
	if bad.UpdateType != canonical.UpdateTypeError || bad.ValidText == "" {
		t.Fatalf("failed invoice should carry Error and a message: %+v", bad)
	}
}
