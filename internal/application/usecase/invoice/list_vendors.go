// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// ListVendorsUseCase returns the sorted distinct vendor names.
type ListVendorsUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListVendorsUseCase creates a new ListVendorsUseCase instance.
func NewListVendorsUseCase(invoiceRepo adapter.InvoiceRepository) *ListVendorsUseCase {
	return &ListVendorsUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute returns every distinct vendor name in ascending order.
func (uc *ListVendorsUseCase) Execute(ctx context.Context) ([]string, error) {
	return uc.invoiceRepo.DistinctVendors(ctx)
}
