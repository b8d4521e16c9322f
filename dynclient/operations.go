package dynclient

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"bitbucket.org/mmdatafocus/dynamics_connector/odata"
	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

func lastModifiedFilter(since *time.Time) string {
	if since == nil {
		return ""
	}
	return fmt.Sprintf("lastModifiedDateTime gt %s", since.UTC().Format(dateFormat))
}

// GetCompanies lists companies, optionally filtered by exact name and
// trimmed down to ids only.
func (c *Client) GetCompanies(ctx context.Context, selectOnlyIDs bool, companyName string) result.Result[[]models.Company] {
	builder := odata.NewURIBuilder(c.basePath).Companies(nil)
	if companyName != "" {
		builder.Filter(fmt.Sprintf("name eq '%s'", companyName))
	}
	if selectOnlyIDs {
		builder.Select("id")
	}
	return result.Bind(builder.Build(), func(path string) result.Result[[]models.Company] {
		return getCollection[models.Company](ctx, c, path)
	})
}

// GetCompanyByName resolves a company by exact name; a nil value
// means no match.
func (c *Client) GetCompanyByName(ctx context.Context, companyName string) result.Result[*models.Company] {
	return result.Map(c.GetCompanies(ctx, true, companyName), func(companies []models.Company) *models.Company {
		if len(companies) == 0 {
			return nil
		}
		return &companies[0]
	})
}

func (c *Client) GetAccounts(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Account] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		Accounts(nil).
		Filter(lastModifiedFilter(since)).
		Build()
	return result.Bind(path, func(p string) result.Result[[]models.Account] {
		return getCollection[models.Account](ctx, c, p)
	})
}

func (c *Client) GetDimensions(ctx context.Context, companyID uuid.UUID, expandValues bool, since *time.Time) result.Result[[]models.Dimension] {
	builder := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		Dimensions(nil).
		Filter(lastModifiedFilter(since))
	if expandValues {
		builder.Expand("dimensionValues")
	}
	return result.Bind(builder.Build(), func(p string) result.Result[[]models.Dimension] {
		return getCollection[models.Dimension](ctx, c, p)
	})
}

func (c *Client) GetDimensionValues(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.DimensionValue] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		DimensionValues(nil).
		Filter(lastModifiedFilter(since)).
		Build()
	return result.Bind(path, func(p string) result.Result[[]models.DimensionValue] {
		return getCollection[models.DimensionValue](ctx, c, p)
	})
}

func (c *Client) GetVendors(ctx context.Context, companyID uuid.UUID, since *time.Time) result.Result[[]models.Vendor] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		Vendors(nil).
		Filter(lastModifiedFilter(since)).
		Build()
	return result.Bind(path, func(p string) result.Result[[]models.Vendor] {
		return getCollection[models.Vendor](ctx, c, p)
	})
}

func (c *Client) GetPurchaseOrders(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseOrder] {
	builder := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		PurchaseOrders(nil)
	if expandLines {
		builder.Expand("purchaseOrderLines")
	}
	return result.Bind(builder.Build(), func(p string) result.Result[[]models.PurchaseOrder] {
		return getCollection[models.PurchaseOrder](ctx, c, p)
	})
}

// GetPurchaseReceipts only returns receipts tied to an order; the
// orderNumber filter weeds out standalone receipts.
func (c *Client) GetPurchaseReceipts(ctx context.Context, companyID uuid.UUID, expandLines bool) result.Result[[]models.PurchaseReceipt] {
	builder := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		MaterialReceipts(nil)
	if expandLines {
		builder.Expand("purchaseReceiptLines")
	}
	builder.Filter("orderNumber ne ''")
	return result.Bind(builder.Build(), func(p string) result.Result[[]models.PurchaseReceipt] {
		return getCollection[models.PurchaseReceipt](ctx, c, p)
	})
}

func (c *Client) GetPurchaseInvoices(ctx context.Context, companyID uuid.UUID, expandVendor bool) result.Result[[]models.PurchaseInvoice] {
	builder := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		PurchaseInvoices(nil)
	if expandVendor {
		builder.Expand("vendor")
	}
	return result.Bind(builder.Build(), func(p string) result.Result[[]models.PurchaseInvoice] {
		return getCollection[models.PurchaseInvoice](ctx, c, p)
	})
}

// GetAllVendorPaymentJournals optionally expands payment lines,
// filtered inside the expansion to one journal display name.
func (c *Client) GetAllVendorPaymentJournals(ctx context.Context, companyID uuid.UUID, since *time.Time, expandPayments bool, journalDisplayName string) result.Result[[]models.VendorPaymentJournal] {
	builder := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		VendorPaymentJournals(nil)
	if expandPayments {
		expansion := "vendorPayments"
		if journalDisplayName != "" {
			expansion += fmt.Sprintf("($filter = journalDisplayName eq '%s')", journalDisplayName)
		}
		builder.Expand(expansion)
	}
	builder.Filter(lastModifiedFilter(since))
	return result.Bind(builder.Build(), func(p string) result.Result[[]models.VendorPaymentJournal] {
		return getCollection[models.VendorPaymentJournal](ctx, c, p)
	})
}

func (c *Client) GetCompanyInfo(ctx context.Context, companyID uuid.UUID) result.Result[models.CompanyInformation] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		CompanyInformation().
		Build()
	return result.Bind(path, func(p string) result.Result[models.CompanyInformation] {
		return getSingle[models.CompanyInformation](ctx, c, p)
	})
}

func (c *Client) CreatePurchaseInvoice(ctx context.Context, companyID uuid.UUID, invoice models.PurchaseInvoice) result.Result[models.PurchaseInvoice] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		PurchaseInvoices(nil).
		Build()
	return result.Bind(path, func(p string) result.Result[models.PurchaseInvoice] {
		return postSingle(ctx, c, p, invoice)
	})
}

func (c *Client) CreatePurchaseInvoiceLine(ctx context.Context, companyID uuid.UUID, invoiceID uuid.UUID, line models.PurchaseInvoiceLine) result.Result[models.PurchaseInvoiceLine] {
	path := odata.NewURIBuilder(c.basePath).
		Companies(&companyID).
		PurchaseInvoices(&invoiceID).
		PurchaseInvoiceLines(nil).
		Build()
	return result.Bind(path, func(p string) result.Result[models.PurchaseInvoiceLine] {
		return postSingle(ctx, c, p, line)
	})
}
