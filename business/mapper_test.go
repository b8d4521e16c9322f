package business

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/dynamics_connector/canonical"
	"bitbucket.org/mmdatafocus/dynamics_connector/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestMapVendor_BlockedSentinelCleanup(t *testing.T) {
	cases := []struct {
		blocked string
		active  bool
	}{
		{"", true},
		{"_x0020_", true},
		{"  ", true},
		{"Payment", false},
		{"All_x0020_Orders", false},
	}
	for _, tc := range cases {
		vendor := mapVendor(models.Vendor{ID: uuid.New(), Blocked: tc.blocked})
		if vendor.Active != tc.active {
			t.Errorf("blocked %q: expected active=%v", tc.blocked, tc.active)
		}
	}
}

func TestMapPurchaseOrder_PropagatesFirstLineLocation(t *testing.T) {
	locationID := uuid.New()
	dyn := models.PurchaseOrder{
		ID:       uuid.New(),
		Number:   "PO-1001",
		VendorID: uuid.New(),
		PurchaseOrderLines: []models.PurchaseOrderLine{
			{ID: uuid.New(), LocationID: uuid.Nil},
			{ID: uuid.New(), LocationID: locationID},
		},
	}

	order := mapPurchaseOrder(dyn)
	if order.BillToCompanyExternalCode != locationID.String() {
		t.Fatalf("expected bill-to %s, got %s", locationID, order.BillToCompanyExternalCode)
	}
	if order.ShipToCompanyExternalCode != locationID.String() {
		t.Fatalf("expected ship-to %s, got %s", locationID, order.ShipToCompanyExternalCode)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.LineItems))
	}
}

func TestMapPurchaseReceipt_OneRecordPerLine(t *testing.T) {
	received := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	dyn := models.PurchaseReceipt{
		ID:          uuid.New(),
		Number:      "REC-7",
		OrderNumber: "PO-1001",
		PurchaseReceiptLines: []models.PurchaseReceiptLine{
			{Sequence: 10000, LineObjectNumber: "ITEM-1", Description: "Widget", Quantity: decimal.NewFromInt(3), ExpectedReceiptDate: received},
			{Sequence: 20000, LineObjectNumber: "ITEM-2", Description: "Gadget", Quantity: decimal.NewFromInt(1), ExpectedReceiptDate: received},
		},
	}

	receipts := mapPurchaseReceipt(dyn)
	if len(receipts) != 2 {
		t.Fatalf("expected one material receipt per line, got %d", len(receipts))
	}
	first := receipts[0]
	if first.PurchaseOrderNumber != "PO-1001" || first.BillOfLadingNumber != "REC-7" {
		t.Fatalf("unexpected receipt header fields: %+v", first)
	}
	if first.PurchaseOrderLineNumber != 10000 || first.ProductCode != "ITEM-1" {
		t.Fatalf("unexpected receipt line fields: %+v", first)
	}
}

func TestMapInvoiceForExport_SplitsVendorNameConvention(t *testing.T) {
	vendorID := uuid.New()
	invoice := &canonical.Invoice{
		InvoiceNumber:      "INV-9",
		VendorExternalCode: vendorID.String(),
		VendorName:         " V0001 | Fabrikam Inc ",
		AccountNumber:      "ACC-1",
		Reference:          "REF-1",
		Amount:             decimal.NewFromInt(500),
		Lines: []*canonical.InvoiceLine{
			nil,
			{
				LineNumber: 10000,
				Amount:     decimal.NewFromInt(500),
				Item:       &canonical.PurchaseItem{ProductName: "Widget", UOM: "PCS", Quantity: decimal.NewFromInt(5), PricePer: decimal.NewFromInt(100)},
			},
		},
	}

	out := mapInvoiceForExport(invoice, "USD")
	if out.IsErr() {
		t.Fatalf("unexpected failure: %s", out.Error())
	}
	export := out.Value()
	if export.Invoice.VendorNumber != "V0001" || export.Invoice.VendorName != "Fabrikam Inc" {
		t.Fatalf("vendor split failed: %+v", export.Invoice)
	}
	if export.Invoice.VendorID == nil || *export.Invoice.VendorID != vendorID {
		t.Fatalf("vendor id not carried: %+v", export.Invoice.VendorID)
	}
	if len(export.Lines) != 1 {
		t.Fatalf("nil lines must be skipped, got %d", len(export.Lines))
	}
	if export.Lines[0].Description != "ACC-1|REF-1|Widget" {
		t.Fatalf("unexpected line description %q", export.Lines[0].Description)
	}
}
