package business

import (
	"context"
	"io"
	"sync"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/config"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var testCompanyID = uuid.MustParse("11111111-2222-3333-4444-555555555555")

type fixedClock struct{ now time.Time }

func (c fixedClock) UtcNow() time.Time { return c.now }

// fakeAPI records calls and answers each operation with a canned
// result. Recording is locked because payment requests fan out.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	companies        result.Result[[]models.Company]
	accounts         result.Result[[]models.Account]
	dimensions       result.Result[[]models.Dimension]
	vendors          result.Result[[]models.Vendor]
	purchaseOrders   result.Result[[]models.PurchaseOrder]
	purchaseReceipts result.Result[[]models.PurchaseReceipt]
	purchaseInvoices result.Result[[]models.PurchaseInvoice]
	journals         result.Result[[]models.VendorPaymentJournal]
	companyInfo      result.Result[models.CompanyInformation]
	createdInvoice   result.Result[models.PurchaseInvoice]
	createLine       func(line models.PurchaseInvoiceLine) result.Result[models.PurchaseInvoiceLine]

	vendorsSince  *time.Time
	journalsSince *time.Time
	createdLines  []models.PurchaseInvoiceLine
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		companies: result.Ok([]models.Company{{ID: testCompanyID, Name: "CRONUS"}}),
	}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, call := range f.calls {
		if call == name {
			return true
		}
	}
	return false
}

func (f *fakeAPI) GetCompanies(ctx context.Context, selectOnlyIDs bool, companyName string) result.Result[[]models.Company] {
	f.record("GetCompanies")
	return f.companies
}

func (f *fakeAPI) GetAccounts(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Account] {
	f.record("GetAccounts")
	return f.accounts
}

func (f *fakeAPI) GetDimensions(ctx context.Context, companyID uuid.UUID, expandValues bool, since *time.Time) result.Result[[]models.Dimension] {
	f.record("GetDimensions")
	return f.dimensions
}

func (f *fakeAPI) GetVendors(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Vendor] {
	f.record("GetVendors")
	f.vendorsSince = since
	return f.vendors
}

func (f *fakeAPI) GetPurchaseOrders(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseOrder] {
	f.record("GetPurchaseOrders")
	return f.purchaseOrders
}

func (f *fakeAPI) GetPurchaseReceipts(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseReceipt] {
	f.record("GetPurchaseReceipts")
	return f.purchaseReceipts
}

func (f *fakeAPI) GetPurchaseInvoices(ctx context.Context, companyID uuid.UUID, expandVendor bool) result.Result[[]models.PurchaseInvoice] {
	f.record("GetPurchaseInvoices")
	return f.purchaseInvoices
}

func (f *fakeAPI) GetAllVendorPaymentJournals(ctx context.Context, companyID uuid.UUID, since *time.Time, expandPayments bool, journalDisplayName string) result.Result[[]models.VendorPaymentJournal] {
	f.record("GetAllVendorPaymentJournals")
	f.journalsSince = since
	return f.journals
}

func (f *fakeAPI) GetCompanyInfo(ctx context.Context, companyID uuid.UUID) result.Result[models.CompanyInformation] {
	f.record("GetCompanyInfo")
	return f.companyInfo
}

func (f *fakeAPI) CreatePurchaseInvoice(ctx context.Context, companyID uuid.UUID, invoice models.PurchaseInvoice) result.Result[models.PurchaseInvoice] {
	f.record("CreatePurchaseInvoice")
	return f.createdInvoice
}

func (f *fakeAPI) CreatePurchaseInvoiceLine(ctx context.Context, companyID uuid.UUID, invoiceID uuid.UUID, line models.PurchaseInvoiceLine) result.Result[models.PurchaseInvoiceLine] {
	f.record("CreatePurchaseInvoiceLine")
	f.createdLines = append(f.createdLines, line)
	if f.createLine != nil {
		return f.createLine(line)
	}
	return result.Ok(line)
}

func newTestContext(api *fakeAPI, store syncstate.Store) *Context {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	settings := config.Settings{
		CompanyName:                "CRONUS",
		CurrencyCodeGroupName:      "USD",
		PaymentJournalDisplayName:  "AVIDX",
		NumberOfDaysToSyncPayments: 7,
	}
	return NewContext(api, settings, syncstate.NewService(store), logger)
}
