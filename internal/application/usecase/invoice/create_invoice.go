// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

// CreateInvoiceInput represents the input for creating a user-owned invoice.
type CreateInvoiceInput struct {
	OwnerID uuid.UUID
	Header  entity.InvoiceHeader
	Lines   []entity.InvoiceLine
}

// CreateInvoiceUseCase handles manual invoice creation.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute validates and persists a new invoice owned by the caller. The
// header amount is derived from the line items, never taken from the request.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*entity.Invoice, error) {
	if !entity.ValidInvoiceType(input.Header.InvoiceType) {
		return nil, domainerror.ErrInvalidInvoiceType
	}
	if len(input.Lines) == 0 {
		return nil, domainerror.ErrEmptyInvoiceLines
	}
	if _, err := time.Parse("2006-01-02", input.Header.InvoiceDate); err != nil {
		return nil, domainerror.ErrInvalidInvoiceDate
	}

	ownerID := input.OwnerID
	inv := entity.NewInvoice(input.Header, input.Lines, &ownerID, entity.InvoiceSourceManual)

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}
