// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

// InvoiceHeaderPayload is the invoice header shape on the wire.
type InvoiceHeaderPayload struct {
	OrgCode        string  `json:"org_code"`
	InvoiceNum     string  `json:"invoice_num" binding:"required,min=1,max=50"`
	InvoiceDate    string  `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	VendorName     string  `json:"vendor_name" binding:"required,min=1,max=255"`
	VendorSiteCode string  `json:"vendor_site_code"`
	InvoiceAmount  float64 `json:"invoice_amount"`
	CurrencyCode   string  `json:"currency_code" binding:"required,len=3"`
	PaymentTerm    string  `json:"payment_term"`
	InvoiceType    string  `json:"invoice_type" binding:"required,oneof=Standard Credit Prepayment"`
	DocumentLink   string  `json:"document_link,omitempty"`
}

// InvoiceLinePayload is an invoice line shape on the wire.
type InvoiceLinePayload struct {
	LineNumber  int     `json:"line_number" binding:"required,min=1"`
	LineType    string  `json:"line_type"`
	Description string  `json:"description" binding:"max=255"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineAmount  float64 `json:"line_amount"`
}

// CreateInvoiceRequest represents the request body for invoice creation.
type CreateInvoiceRequest struct {
	InvoiceHeader InvoiceHeaderPayload `json:"invoice_header" binding:"required"`
	InvoiceLines  []InvoiceLinePayload `json:"invoice_lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents the request body for a partial header
// update. An invoice_amount field is accepted for compatibility but ignored:
// the amount is always recomputed server-side from the line items.
type UpdateInvoiceRequest struct {
	OrgCode        *string  `json:"org_code,omitempty"`
	InvoiceDate    *string  `json:"invoice_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	VendorName     *string  `json:"vendor_name,omitempty" binding:"omitempty,min=1,max=255"`
	VendorSiteCode *string  `json:"vendor_site_code,omitempty"`
	InvoiceAmount  *float64 `json:"invoice_amount,omitempty"`
	CurrencyCode   *string  `json:"currency_code,omitempty" binding:"omitempty,len=3"`
	PaymentTerm    *string  `json:"payment_term,omitempty"`
	InvoiceType    *string  `json:"invoice_type,omitempty" binding:"omitempty,oneof=Standard Credit Prepayment"`
	DocumentLink   *string  `json:"document_link,omitempty"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	InvoiceHeader InvoiceHeaderResponse `json:"invoice_header"`
	InvoiceLines  []InvoiceLineResponse `json:"invoice_lines"`
	OwnerID       *string               `json:"owner_id,omitempty"`
	Source        string                `json:"source,omitempty"`
	CreatedAt     string                `json:"created_at,omitempty"`
	UpdatedAt     string                `json:"updated_at,omitempty"`
}

// InvoiceHeaderResponse represents the invoice header in API responses.
type InvoiceHeaderResponse struct {
	OrgCode        string `json:"org_code"`
	InvoiceNum     string `json:"invoice_num"`
	InvoiceDate    string `json:"invoice_date"`
	VendorName     string `json:"vendor_name"`
	VendorSiteCode string `json:"vendor_site_code"`
	InvoiceAmount  string `json:"invoice_amount"`
	CurrencyCode   string `json:"currency_code"`
	PaymentTerm    string `json:"payment_term"`
	InvoiceType    string `json:"invoice_type"`
	DocumentLink   string `json:"document_link,omitempty"`
}

// InvoiceLineResponse represents an invoice line in API responses.
type InvoiceLineResponse struct {
	LineNumber  int    `json:"line_number"`
	LineType    string `json:"line_type"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineAmount  string `json:"line_amount"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse  `json:"invoices"`
	Pagination PaginationResponse `json:"pagination"`
}

// VendorListResponse represents the response for listing vendors.
type VendorListResponse struct {
	Vendors []string `json:"vendors"`
}

// ToInvoiceResponse converts a domain invoice to its API shape.
func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, line := range inv.Lines {
		lines[i] = InvoiceLineResponse{
			LineNumber:  line.LineNumber,
			LineType:    line.LineType,
			Description: line.Description,
			Quantity:    line.Quantity.String(),
			UnitPrice:   line.UnitPrice.String(),
			LineAmount:  line.LineAmount.String(),
		}
	}

	resp := InvoiceResponse{
		InvoiceHeader: InvoiceHeaderResponse{
			OrgCode:        inv.Header.OrgCode,
			InvoiceNum:     inv.Header.InvoiceNum,
			InvoiceDate:    inv.Header.InvoiceDate,
			VendorName:     inv.Header.VendorName,
			VendorSiteCode: inv.Header.VendorSiteCode,
			InvoiceAmount:  inv.Header.InvoiceAmount.String(),
			CurrencyCode:   inv.Header.CurrencyCode,
			PaymentTerm:    inv.Header.PaymentTerm,
			InvoiceType:    string(inv.Header.InvoiceType),
			DocumentLink:   inv.Header.DocumentLink,
		},
		InvoiceLines: lines,
		Source:       string(inv.Source),
	}

	if inv.OwnerID != nil {
		ownerID := inv.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	if !inv.CreatedAt.IsZero() {
		resp.CreatedAt = inv.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if !inv.UpdatedAt.IsZero() {
		resp.UpdatedAt = inv.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return resp
}

// ToInvoiceListResponse converts a listing result to its API shape.
func ToInvoiceListResponse(invoices []*entity.Invoice, total int64, page, limit, totalPages int) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToInvoiceResponse(inv)
	}
	return InvoiceListResponse{
		Invoices: items,
		Pagination: PaginationResponse{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

// HeaderFromPayload converts the wire header to its domain shape. The
// caller-supplied amount is carried over but later superseded by the
// line-derived total.
func HeaderFromPayload(p InvoiceHeaderPayload) entity.InvoiceHeader {
	return entity.InvoiceHeader{
		OrgCode:        p.OrgCode,
		InvoiceNum:     p.InvoiceNum,
		InvoiceDate:    p.InvoiceDate,
		VendorName:     p.VendorName,
		VendorSiteCode: p.VendorSiteCode,
		InvoiceAmount:  decimal.NewFromFloat(p.InvoiceAmount),
		CurrencyCode:   p.CurrencyCode,
		PaymentTerm:    p.PaymentTerm,
		InvoiceType:    entity.InvoiceType(p.InvoiceType),
		DocumentLink:   p.DocumentLink,
	}
}

// LinesFromPayload converts the wire lines to their domain shape.
func LinesFromPayload(payloads []InvoiceLinePayload) []entity.InvoiceLine {
	lines := make([]entity.InvoiceLine, len(payloads))
	for i, p := range payloads {
		lines[i] = entity.InvoiceLine{
			LineNumber:  p.LineNumber,
			LineType:    p.LineType,
			Description: p.Description,
			Quantity:    decimal.NewFromFloat(p.Quantity),
			UnitPrice:   decimal.NewFromFloat(p.UnitPrice),
			LineAmount:  decimal.NewFromFloat(p.LineAmount),
		}
	}
	return lines
}
