// Package export contains the spreadsheet export use case.
package export

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/invoice"
)

// ExportInvoicesInput represents the input for a filtered export.
type ExportInvoicesInput struct {
	Params invoice.FilterParams
}

// ExportInvoicesOutput carries the rendered spreadsheet document.
type ExportInvoicesOutput struct {
	Data []byte
}

// ExportInvoicesUseCase renders every invoice matching a filter into a
// two-sheet spreadsheet (headers and lines). The export either fully
// succeeds or fails as a unit.
type ExportInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reconciler  *invoice.Reconciler
	exporter    adapter.InvoiceExporter
}

// NewExportInvoicesUseCase creates a new ExportInvoicesUseCase instance.
func NewExportInvoicesUseCase(
	invoiceRepo adapter.InvoiceRepository,
	reconciler *invoice.Reconciler,
	exporter adapter.InvoiceExporter,
) *ExportInvoicesUseCase {
	return &ExportInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		reconciler:  reconciler,
		exporter:    exporter,
	}
}

// Execute fetches the full filtered set (no pagination), reconciles it and
// renders the spreadsheet.
func (uc *ExportInvoicesUseCase) Execute(ctx context.Context, input ExportInvoicesInput) (*ExportInvoicesOutput, error) {
	filter := invoice.BuildFilter(input.Params)

	result, err := uc.invoiceRepo.FindByFilter(ctx, filter, adapter.InvoicePagination{Page: 1, Limit: 0})
	if err != nil {
		return nil, err
	}
	if err := uc.reconciler.ReconcileAll(ctx, result.Invoices); err != nil {
		return nil, err
	}

	data, err := uc.exporter.Export(result.Invoices)
	if err != nil {
		return nil, err
	}

	return &ExportInvoicesOutput{Data: data}, nil
}
