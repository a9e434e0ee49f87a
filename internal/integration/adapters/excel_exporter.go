// Package adapters provides implementations for external service integrations.
package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

const (
	headerSheetName = "Invoice Headers"
	lineSheetName   = "Invoice Lines"
)

var headerColumns = []string{
	"Org Code", "Invoice Number", "Invoice Date", "Vendor Name",
	"Vendor Site", "Amount", "Currency", "Payment Term", "Type",
}

var lineColumns = []string{
	"Invoice Number", "Line Number", "Line Type", "Description",
	"Quantity", "Unit Price", "Line Amount",
}

// ExcelExporter implements the adapter.InvoiceExporter using excelize.
type ExcelExporter struct{}

// NewExcelExporter creates a new spreadsheet exporter instance.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export renders the invoices into a workbook with a header sheet and a
// line-item sheet.
func (e *ExcelExporter) Export(invoices []*entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", headerSheetName)
	if _, err := f.NewSheet(lineSheetName); err != nil {
		return nil, fmt.Errorf("failed to create line sheet: %w", err)
	}

	if err := writeRow(f, headerSheetName, 1, toCells(headerColumns)); err != nil {
		return nil, err
	}
	if err := writeRow(f, lineSheetName, 1, toCells(lineColumns)); err != nil {
		return nil, err
	}

	lineRow := 2
	for i, inv := range invoices {
		headerCells := []interface{}{
			inv.Header.OrgCode,
			inv.Header.InvoiceNum,
			inv.Header.InvoiceDate,
			inv.Header.VendorName,
			inv.Header.VendorSiteCode,
			inv.Header.InvoiceAmount.InexactFloat64(),
			inv.Header.CurrencyCode,
			inv.Header.PaymentTerm,
			string(inv.Header.InvoiceType),
		}
		if err := writeRow(f, headerSheetName, i+2, headerCells); err != nil {
			return nil, err
		}

		for _, line := range inv.Lines {
			lineCells := []interface{}{
				inv.Header.InvoiceNum,
				line.LineNumber,
				line.LineType,
				line.Description,
				line.Quantity.InexactFloat64(),
				line.UnitPrice.InexactFloat64(),
				line.LineAmount.InexactFloat64(),
			}
			if err := writeRow(f, lineSheetName, lineRow, lineCells); err != nil {
				return nil, err
			}
			lineRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

var _ adapter.InvoiceExporter = (*ExcelExporter)(nil)
