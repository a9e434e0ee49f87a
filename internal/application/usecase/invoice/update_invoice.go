// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

// UpdateInvoiceInput represents the input for a partial header update.
// Nil fields are left untouched. A caller-supplied amount is deliberately
// absent: the header amount is always recomputed from the current line items.
type UpdateInvoiceInput struct {
	InvoiceNum string
	Update     adapter.HeaderUpdate
}

// UpdateInvoiceUseCase handles partial invoice header updates.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute applies the header update. The stored amount is unconditionally
// overwritten with the total of the current line items, so the header/lines
// invariant holds after every write.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*entity.Invoice, error) {
	if input.Update.InvoiceType != nil && !entity.ValidInvoiceType(*input.Update.InvoiceType) {
		return nil, domainerror.ErrInvalidInvoiceType
	}

	current, err := uc.invoiceRepo.FindByNum(ctx, input.InvoiceNum)
	if err != nil {
		return nil, err
	}

	amount := current.LineTotal()
	if err := uc.invoiceRepo.UpdateHeader(ctx, input.InvoiceNum, input.Update, amount); err != nil {
		return nil, err
	}

	return uc.invoiceRepo.FindByNum(ctx, input.InvoiceNum)
}
