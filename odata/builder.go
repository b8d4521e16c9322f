package odata

import (
	"fmt"
	"strings"

	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/google/uuid"
)

// URIBuilder assembles an OData request path from entity segments and
// optional query clauses. Clause contents are not URL-encoded; callers
// are responsible for producing valid tokens.
type URIBuilder struct {
	base     string
	entity   string
	filters  []string
	selects  []string
	expands  []string
	orderBys []string
	top      *int
	skip     *int
}

func NewURIBuilder(base string) *URIBuilder {
	return &URIBuilder{base: base}
}

// ForEntity appends a path segment, keyed by id when one is given.
func (b *URIBuilder) ForEntity(entity string, id *uuid.UUID) *URIBuilder {
	segment := entity
	if id != nil {
		segment += fmt.Sprintf("(%s)", id)
	}
	b.entity += segment
	return b
}

func (b *URIBuilder) Companies(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("companies", id)
}

func (b *URIBuilder) Accounts(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/accounts", id)
}

func (b *URIBuilder) Dimensions(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/dimensions", id)
}

func (b *URIBuilder) DimensionValues(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/dimensionValues", id)
}

func (b *URIBuilder) Vendors(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/vendors", id)
}

func (b *URIBuilder) MaterialReceipts(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/purchaseReceipts", id)
}

func (b *URIBuilder) VendorPaymentJournals(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/vendorPaymentJournals", id)
}

func (b *URIBuilder) PurchaseInvoices(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/purchaseInvoices", id)
}

func (b *URIBuilder) PurchaseInvoiceLines(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/purchaseInvoiceLines", id)
}

func (b *URIBuilder) PurchaseOrders(id *uuid.UUID) *URIBuilder {
	return b.ForEntity("/purchaseOrders", id)
}

func (b *URIBuilder) CompanyInformation() *URIBuilder {
	return b.ForEntity("/companyInformation", nil)
}

// Filter adds a $filter expression; empty input is a no-op.
func (b *URIBuilder) Filter(filter string) *URIBuilder {
	if strings.TrimSpace(filter) != "" {
		b.filters = append(b.filters, filter)
	}
	return b
}

func (b *URIBuilder) Select(fields ...string) *URIBuilder {
	b.selects = append(b.selects, fields...)
	return b
}

func (b *URIBuilder) Expand(relationships ...string) *URIBuilder {
	b.expands = append(b.expands, relationships...)
	return b
}

func (b *URIBuilder) OrderBy(field string, descending bool) *URIBuilder {
	if strings.TrimSpace(field) == "" {
		return b
	}
	if descending {
		field += " desc"
	}
	b.orderBys = append(b.orderBys, field)
	return b
}

func (b *URIBuilder) Top(n int) *URIBuilder {
	b.top = &n
	return b
}

func (b *URIBuilder) Skip(n int) *URIBuilder {
	b.skip = &n
	return b
}

// Build renders the path. Clause order is fixed regardless of call
// order: $filter, $select, $expand, $orderBy, $top, $skip.
func (b *URIBuilder) Build() result.Result[string] {
	if strings.TrimSpace(b.entity) == "" {
		return result.Err[string]("entity is not specified")
	}

	var queryParts []string
	if len(b.filters) > 0 {
		queryParts = append(queryParts, "$filter="+strings.Join(b.filters, " and "))
	}
	if len(b.selects) > 0 {
		queryParts = append(queryParts, "$select="+strings.Join(b.selects, ","))
	}
	if len(b.expands) > 0 {
		queryParts = append(queryParts, "$expand="+strings.Join(b.expands, ","))
	}
	if len(b.orderBys) > 0 {
		queryParts = append(queryParts, "$orderBy="+strings.Join(b.orderBys, ","))
	}
	if b.top != nil {
		queryParts = append(queryParts, fmt.Sprintf("$top=%d", *b.top))
	}
	if b.skip != nil {
		queryParts = append(queryParts, fmt.Sprintf("$skip=%d", *b.skip))
	}

	path := b.base + "/" + b.entity
	if len(queryParts) > 0 {
		path += "?" + strings.Join(queryParts, "&")
	}
	return result.Ok(path)
}
