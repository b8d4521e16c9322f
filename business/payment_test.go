package business

import (
	"context"
	"strings"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func paymentLine(documentNumber string, amount int64, appliesTo string) models.VendorPayment {
	posting := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	return models.VendorPayment{
		ID:                     uuid.New(),
		VendorNumber:           "V0001",
		PostingDate:            &posting,
		DocumentNumber:         documentNumber,
		ExternalDocumentNumber: "EXT-" + documentNumber,
		Amount:                 decimal.NewFromInt(amount),
		AppliesToInvoiceNumber: appliesTo,
		Description:            "Fabrikam",
	}
}

func requestFixture(api *fakeAPI, payments ...models.VendorPayment) {
	api.companyInfo = result.Ok(models.CompanyInformation{
		ID:          uuid.New(),
		DisplayName: "CRONUS USA, Inc.",
	})
	api.journals = result.Ok([]models.VendorPaymentJournal{{
		ID:                     uuid.New(),
		Code:                   "GENERAL",
		BalancingAccountNumber: "10100",
		VendorPayments:         payments,
	}})
	total := decimal.NewFromInt(100)
	api.purchaseInvoices = result.Ok([]models.PurchaseInvoice{{
		Number:                  "INV1",
		VendorInvoiceNumber:     "VINV1",
		TotalAmountIncludingTax: &total,
	}})
}

func TestGetPaymentRequests_MatchesLineToInvoice(t *testing.T) {
	api := newFakeAPI()
	requestFixture(api, paymentLine("P1", 100, "INV1"))
	bc := newTestContext(api, syncstate.NewMemStore())
	bc.Clock = fixedClock{now: time.Date(2024, 5, 21, 9, 30, 0, 0, time.UTC)}

	out := bc.GetPaymentRequests(context.Background())
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	if len(out.Value()) != 1 {
		t.Fatalf("expected exactly one payment request, got %d", len(out.Value()))
	}
	request := out.Value()[0]
	if request.PaymentNumber != "P1" {
		t.Fatalf("unexpected payment number %q", request.PaymentNumber)
	}
	if request.BatchExternalCode != "GENERAL--21-May-2024-09-30-00" {
		t.Fatalf("unexpected batch code %q", request.BatchExternalCode)
	}
	if len(request.Invoices) != 1 || request.Invoices[0].InvoiceNumber != "VINV1" {
		t.Fatalf("unexpected request invoices: %+v", request.Invoices)
	}
}

func TestGetPaymentRequests_DisqualifiedLinesProduceNothing(t *testing.T) {
	cases := []struct {
		name string
		line models.VendorPayment
	}{
		{"zero amount", paymentLine("P1", 0, "INV1")},
		{"empty invoice reference", paymentLine("P1", 100, "")},
		{"empty document number", paymentLine("", 100, "INV1")},
		{"unmatched reference", paymentLine("P1", 100, "NOPE")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI()
			requestFixture(api, tc.line)
			bc := newTestContext(api, syncstate.NewMemStore())

			out := bc.GetPaymentRequests(context.Background())
			if out.IsErr() {
				t.Fatalf("unexpected failure: %s", out.Error())
			}
			if len(out.Value()) != 0 {
				t.Fatalf("expected no requests, got %d", len(out.Value()))
			}
		})
	}
}

func TestGetPaymentRequests_MultipleFailuresAreConcatenated(t *testing.T) {
	api := newFakeAPI()
	api.companyInfo = result.Err[models.CompanyInformation]("Not Found: company info")
	api.journals = result.Err[[]models.VendorPaymentJournal]("Not Found: journals")
	api.purchaseInvoices = result.Ok([]models.PurchaseInvoice{})
	bc := newTestContext(api, syncstate.NewMemStore())

	out := bc.GetPaymentRequests(context.Background())
	if out.IsOk() {
		t.Fatal("expected the fan-out to fail")
	}
	if !strings.Contains(out.Error(), "company info") || !strings.Contains(out.Error(), "journals") {
		t.Fatalf("expected both messages in one failure, got %q", out.Error())
	}
}

func TestGetPaymentHistory_FlagsMissingInvoiceNumbers(t *testing.T) {
	missing := paymentLine("P2", 50, "")
	missing.ExternalDocumentNumber = ""

	api := newFakeAPI()
	api.journals = result.Ok([]models.VendorPaymentJournal{{
		ID:             uuid.New(),
		Code:           "GENERAL",
		VendorPayments: []models.VendorPayment{paymentLine("P1", 100, ""), missing},
	}})
	bc := newTestContext(api, syncstate.NewMemStore())

	out := bc.GetPaymentHistory(context.Background())
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	histories := out.Value()
	if len(histories) != 2 {
		t.Fatalf("flagged records must stay in output, got %d", len(histories))
	}
	if histories[0].ValidText != "" || !histories[0].IsValid {
		t.Fatalf("record with an invoice number should stay valid: %+v", histories[0])
	}
	if histories[1].IsValid || histories[1].ValidText == "" {
		t.Fatalf("record without an invoice number must be flagged: %+v", histories[1])
	}
	if !strings.Contains(histories[1].ValidText, histories[1].ExternalCode) ||
		!strings.Contains(histories[1].ValidText, "P2") {
		t.Fatalf("flag message should name the record: %q", histories[1].ValidText)
	}
}

func TestGetPaymentHistory_WindowIsClampedTo30Days(t *testing.T) {
	now := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)

	api := newFakeAPI()
	api.journals = result.Ok([]models.VendorPaymentJournal{})
	bc := newTestContext(api, syncstate.NewMemStore())
	bc.Clock = fixedClock{now: now}
	bc.Settings.NumberOfDaysToSyncPayments = 90

	if out := bc.GetPaymentHistory(context.Background()); out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	want := now.Add(-30 * 24 * time.Hour)
	if api.journalsSince == nil || !api.journalsSince.Equal(want) {
		t.Fatalf("expected window cutoff %v, got %v", want, api.journalsSince)
	}
}

func TestGetPaymentHistory_DoesNotRequireInvoiceReference(t *testing.T) {
	api := newFakeAPI()
	api.journals = result.Ok([]models.VendorPaymentJournal{{
		ID:             uuid.New(),
		Code:           "GENERAL",
		VendorPayments: []models.VendorPayment{paymentLine("P1", 100, "")},
	}})
	bc := newTestContext(api, syncstate.NewMemStore())

	out := bc.GetPaymentHistory(context.Background())
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	if len(out.Value()) != 1 {
		t.Fatalf("history must not require an applies-to reference, got %d records", len(out.Value()))
	}
}
