package business

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/config"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"bitbucket.org/mmdatafocus/dynamics_connector/syncstate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// APIClient is the slice of the Dynamics client the business layer
// depends on; tests substitute a fake.
type APIClient interface {
	GetCompanies(ctx context.Context, selectOnlyIDs bool, companyName string) result.Result[[]models.Company]
	GetAccounts(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Account]
	GetDimensions(ctx context.Context, companyID uuid.UUID, expandValues bool, since *time.Time) result.Result[[]models.Dimension]
	GetVendors(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Vendor]
	GetPurchaseOrders(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseOrder]
	GetPurchaseReceipts(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseReceipt]
	GetPurchaseInvoices(ctx context.Context, companyID uuid.UUID, expandVendor bool) result.Result[[]models.PurchaseInvoice]
	GetAllVendorPaymentJournals(ctx context.Context, companyID uuid.UUID, since *time.Time, expandPayments bool, journalDisplayName string) result.Result[[]models.VendorPaymentJournal]
	GetCompanyInfo(ctx context.Context, companyID uuid.UUID) result.Result[models.CompanyInformation]
	CreatePurchaseInvoice(ctx context.Context, companyID uuid.UUID, invoice models.PurchaseInvoice) result.Result[models.PurchaseInvoice]
	CreatePurchaseInvoiceLine(ctx context.Context, companyID uuid.UUID, invoiceID uuid.UUID, line models.PurchaseInvoiceLine) result.Result[models.PurchaseInvoiceLine]
}

// Context carries the collaborators every entity operation needs.
type Context struct {
	API       APIClient
	Settings  config.Settings
	SyncTimes *syncstate.Service
	Clock     syncstate.Clock
	Logger    *logrus.Logger
}

func NewContext(api APIClient, settings config.Settings, syncTimes *syncstate.Service, logger *logrus.Logger) *Context {
	return &Context{
		API:       api,
		Settings:  settings,
		SyncTimes: syncTimes,
		Clock:     syncstate.SystemClock(),
		Logger:    logger,
	}
}

// companyID resolves the configured company name to its id. Zero or
// ambiguous matches fail without any further remote calls.
func (bc *Context) companyID(ctx context.Context) result.Result[uuid.UUID] {
	companies := bc.API.GetCompanies(ctx, true, bc.Settings.CompanyName)
	return result.Bind(companies, func(matches []models.Company) result.Result[uuid.UUID] {
		switch len(matches) {
		case 0:
			message := fmt.Sprintf("did not find any company with the name '%s'", bc.Settings.CompanyName)
			bc.Logger.Error(message)
			return result.Err[uuid.UUID](message)
		case 1:
			return result.Ok(matches[0].ID)
		default:
			message := fmt.Sprintf("found more than one company with the name '%s'", bc.Settings.CompanyName)
			bc.Logger.Error(message)
			return result.Err[uuid.UUID](message)
		}
	})
}

// watermark reads the incremental-sync cutoff for T. A nil time means
// full sync; syncAll bypasses the read entirely.
func watermark[T any](bc *Context, syncAll bool) result.Result[*time.Time] {
	if syncAll {
		return result.Ok[*time.Time](nil)
	}
	return syncstate.GetLastSyncTime[T](bc.SyncTimes)
}
