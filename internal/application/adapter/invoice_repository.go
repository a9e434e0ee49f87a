// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

// InvoiceFilter defines the normalized filter options for querying invoices.
// Empty string fields are absent predicates. The date range only applies when
// both bounds are set. InvoiceNum short-circuits every other predicate and is
// only produced by the chat intent extractor.
type InvoiceFilter struct {
	InvoiceNum  string
	Vendor      string
	Currency    string
	InvoiceType string
	Search      string
	StartDate   string
	EndDate     string
	OwnerID     *uuid.UUID
}

// InvoicePagination defines pagination options. A Limit of 0 disables
// pagination and returns every matching invoice (used by export and chat).
type InvoicePagination struct {
	Page  int
	Limit int
}

// InvoiceListResult represents the result of listing invoices.
type InvoiceListResult struct {
	Invoices   []*entity.Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// HeaderUpdate carries the header fields of a partial invoice update.
// Nil fields are left untouched. The amount is never part of an update:
// it is always recomputed from the current line items.
type HeaderUpdate struct {
	OrgCode        *string
	InvoiceDate    *string
	VendorName     *string
	VendorSiteCode *string
	CurrencyCode   *string
	PaymentTerm    *string
	InvoiceType    *entity.InvoiceType
	DocumentLink   *string
}

// InvoiceRepository defines the interface for invoice data access.
type InvoiceRepository interface {
	// Create persists a new invoice with its lines.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByNum retrieves an invoice with its lines by invoice number.
	FindByNum(ctx context.Context, invoiceNum string) (*entity.Invoice, error)

	// FindByFilter retrieves invoices with their lines matching the filter.
	FindByFilter(ctx context.Context, filter InvoiceFilter, pagination InvoicePagination) (*InvoiceListResult, error)

	// UpdateHeader applies a partial header update plus the recomputed amount,
	// keyed by invoice number.
	UpdateHeader(ctx context.Context, invoiceNum string, update HeaderUpdate, amount decimal.Decimal) error

	// UpdateAmount persists a reconciled header amount keyed by invoice number.
	UpdateAmount(ctx context.Context, invoiceNum string, amount decimal.Decimal) error

	// DistinctVendors returns the sorted distinct vendor names.
	DistinctVendors(ctx context.Context) ([]string, error)
}
