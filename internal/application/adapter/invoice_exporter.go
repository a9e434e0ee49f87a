// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/invoice-hub/backend/internal/domain/entity"

// InvoiceExporter renders invoices into a spreadsheet document with one sheet
// for headers and one for line items.
type InvoiceExporter interface {
	Export(invoices []*entity.Invoice) ([]byte, error)
}
