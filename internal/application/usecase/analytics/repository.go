// Package analytics contains analytics-related use cases.
package analytics

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// Repository defines the aggregation queries backing the analytics use cases.
type Repository interface {
	// GetSummary computes count, total amount, per-type breakdown (descending
	// by count) and per-month totals (ascending by YYYY-MM) over the invoices
	// matching the filter. All four aggregates reflect the same filtered set.
	GetSummary(ctx context.Context, filter adapter.InvoiceFilter) (*entity.InvoiceSummary, error)
}
