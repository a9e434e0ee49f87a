// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/invoice-hub/backend/internal/domain/entity"

// TypeBreakdownResponse is one per-type tuple of the invoice summary.
type TypeBreakdownResponse struct {
	InvoiceType string `json:"invoice_type"`
	Count       int64  `json:"count"`
	Amount      string `json:"amount"`
}

// MonthlyTotalResponse is one per-month tuple of the invoice summary.
type MonthlyTotalResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// InvoiceSummaryResponse represents the analytics summary in API responses.
type InvoiceSummaryResponse struct {
	TotalCount    int64                   `json:"total_count"`
	TotalAmount   string                  `json:"total_amount"`
	TypeBreakdown []TypeBreakdownResponse `json:"type_breakdown"`
	MonthlyTotals []MonthlyTotalResponse  `json:"monthly_totals"`
}

// ToInvoiceSummaryResponse converts a domain summary to its API shape.
func ToInvoiceSummaryResponse(summary *entity.InvoiceSummary) InvoiceSummaryResponse {
	byType := make([]TypeBreakdownResponse, len(summary.TypeBreakdown))
	for i, tb := range summary.TypeBreakdown {
		byType[i] = TypeBreakdownResponse{
			InvoiceType: string(tb.Type),
			Count:       tb.Count,
			Amount:      tb.Amount.String(),
		}
	}

	byMonth := make([]MonthlyTotalResponse, len(summary.MonthlyTotals))
	for i, mt := range summary.MonthlyTotals {
		byMonth[i] = MonthlyTotalResponse{
			Month:  mt.Month,
			Amount: mt.Amount.String(),
		}
	}

	return InvoiceSummaryResponse{
		TotalCount:    summary.TotalCount,
		TotalAmount:   summary.TotalAmount.String(),
		TypeBreakdown: byType,
		MonthlyTotals: byMonth,
	}
}
