// Package analytics contains analytics-related use cases.
package analytics

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/invoice"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the invoice summary.
type GetSummaryInput struct {
	Params invoice.FilterParams
}

// GetSummaryUseCase computes the invoice summary for a filtered set.
type GetSummaryUseCase struct {
	invoiceRepo   adapter.InvoiceRepository
	analyticsRepo Repository
	reconciler    *invoice.Reconciler
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	invoiceRepo adapter.InvoiceRepository,
	analyticsRepo Repository,
	reconciler *invoice.Reconciler,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		invoiceRepo:   invoiceRepo,
		analyticsRepo: analyticsRepo,
		reconciler:    reconciler,
	}
}

// Execute reconciles the filtered set first and aggregates afterwards, so the
// summary totals always equal the sum of line-derived header amounts and never
// reflect stale values.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*entity.InvoiceSummary, error) {
	filter := invoice.BuildFilter(input.Params)

	result, err := uc.invoiceRepo.FindByFilter(ctx, filter, adapter.InvoicePagination{Page: 1, Limit: 0})
	if err != nil {
		return nil, err
	}
	if err := uc.reconciler.ReconcileAll(ctx, result.Invoices); err != nil {
		return nil, err
	}

	return uc.analyticsRepo.GetSummary(ctx, filter)
}
