// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType represents the business type of an invoice.
type InvoiceType string

const (
	InvoiceTypeStandard   InvoiceType = "Standard"
	InvoiceTypeCredit     InvoiceType = "Credit"
	InvoiceTypePrepayment InvoiceType = "Prepayment"
)

// InvoiceSource represents how an invoice entered the system.
type InvoiceSource string

const (
	InvoiceSourceManual   InvoiceSource = "manual"
	InvoiceSourceImported InvoiceSource = "imported"
)

// InvoiceHeader holds the summary fields of an invoice.
// InvoiceDate is always an ISO date string (YYYY-MM-DD).
type InvoiceHeader struct {
	OrgCode        string
	InvoiceNum     string
	InvoiceDate    string
	VendorName     string
	VendorSiteCode string
	InvoiceAmount  decimal.Decimal
	CurrencyCode   string
	PaymentTerm    string
	InvoiceType    InvoiceType
	DocumentLink   string
}

// InvoiceLine is a single itemized charge on an invoice.
type InvoiceLine struct {
	LineNumber  int
	LineType    string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineAmount  decimal.Decimal
}

// Invoice is the root aggregate: a header plus its ordered line items.
type Invoice struct {
	ID              uuid.UUID
	Header          InvoiceHeader
	Lines           []InvoiceLine
	OwnerID         *uuid.UUID
	Source          InvoiceSource
	OriginMessageID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewInvoice creates a new Invoice entity with its amount derived from the lines.
func NewInvoice(header InvoiceHeader, lines []InvoiceLine, ownerID *uuid.UUID, source InvoiceSource) *Invoice {
	now := time.Now().UTC()

	inv := &Invoice{
		ID:        uuid.New(),
		Header:    header,
		Lines:     lines,
		OwnerID:   ownerID,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
	inv.Header.InvoiceAmount = inv.LineTotal()
	return inv
}

// LineTotal sums the line amounts of the invoice.
func (i *Invoice) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range i.Lines {
		total = total.Add(line.LineAmount)
	}
	return total
}

// IsConsistent reports whether the header amount matches the line total.
func (i *Invoice) IsConsistent() bool {
	return i.Header.InvoiceAmount.Equal(i.LineTotal())
}

// ValidInvoiceType reports whether t is one of the known invoice types.
func ValidInvoiceType(t InvoiceType) bool {
	switch t {
	case InvoiceTypeStandard, InvoiceTypeCredit, InvoiceTypePrepayment:
		return true
	}
	return false
}

// TypeBreakdown is one (type, count, amount) tuple of an invoice summary.
type TypeBreakdown struct {
	Type   InvoiceType
	Count  int64
	Amount decimal.Decimal
}

// MonthlyTotal is one (YYYY-MM, amount) tuple of an invoice summary.
type MonthlyTotal struct {
	Month  string
	Amount decimal.Decimal
}

// InvoiceSummary holds the aggregates computed over a filtered invoice set.
// It is derived on demand and never persisted.
type InvoiceSummary struct {
	TotalCount    int64
	TotalAmount   decimal.Decimal
	TypeBreakdown []TypeBreakdown
	MonthlyTotals []MonthlyTotal
}
