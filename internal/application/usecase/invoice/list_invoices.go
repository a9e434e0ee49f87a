// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	Params FilterParams
	Page   int
	Limit  int
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices   []*entity.Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListInvoicesUseCase handles filtered, paginated invoice listing.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reconciler  *Reconciler
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository, reconciler *Reconciler) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the invoice listing. A limit of 0 disables pagination and
// returns every matching invoice; export and chat rely on that.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 0 {
		limit = 0
	}

	filter := BuildFilter(input.Params)
	pagination := adapter.InvoicePagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.invoiceRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	if err := uc.reconciler.ReconcileAll(ctx, result.Invoices); err != nil {
		return nil, err
	}

	return &ListInvoicesOutput{
		Invoices:   result.Invoices,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
