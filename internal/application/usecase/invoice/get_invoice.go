// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// GetInvoiceUseCase handles single invoice lookup by invoice number.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reconciler  *Reconciler
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository, reconciler *Reconciler) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		reconciler:  reconciler,
	}
}

// Execute retrieves a reconciled invoice by its number.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, invoiceNum string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.FindByNum(ctx, invoiceNum)
	if err != nil {
		return nil, err
	}

	if err := uc.reconciler.Reconcile(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}
