// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

func TestExcelExporter_Export(t *testing.T) {
	exporter := NewExcelExporter()

	invoices := []*entity.Invoice{
		{
			Header: entity.InvoiceHeader{
				OrgCode:       "ORG-1",
				InvoiceNum:    "INV-001",
				InvoiceDate:   "2024-03-10",
				VendorName:    "Acme",
				InvoiceAmount: decimal.RequireFromString("100.00"),
				CurrencyCode:  "USD",
				InvoiceType:   entity.InvoiceTypeStandard,
			},
			Lines: []entity.InvoiceLine{
				{LineNumber: 1, LineType: "Item", Description: "Widgets", Quantity: decimal.RequireFromString("3"), UnitPrice: decimal.RequireFromString("20"), LineAmount: decimal.RequireFromString("60.00")},
				{LineNumber: 2, LineType: "Tax", Description: "Sales tax", LineAmount: decimal.RequireFromString("40.00")},
			},
		},
		{
			Header: entity.InvoiceHeader{
				InvoiceNum:    "INV-002",
				InvoiceDate:   "2024-03-12",
				VendorName:    "Globex",
				InvoiceAmount: decimal.RequireFromString("55.50"),
				CurrencyCode:  "EUR",
				InvoiceType:   entity.InvoiceTypeCredit,
			},
			Lines: []entity.InvoiceLine{
				{LineNumber: 1, LineType: "Item", LineAmount: decimal.RequireFromString("55.50")},
			},
		},
	}

	data, err := exporter.Export(invoices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	t.Run("workbook has both sheets", func(t *testing.T) {
		sheets := f.GetSheetList()
		if len(sheets) != 2 || sheets[0] != "Invoice Headers" || sheets[1] != "Invoice Lines" {
			t.Errorf("unexpected sheets: %v", sheets)
		}
	})

	t.Run("header sheet carries one row per invoice", func(t *testing.T) {
		rows, err := f.GetRows("Invoice Headers")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected title plus 2 rows, got %d", len(rows))
		}
		if rows[0][1] != "Invoice Number" {
			t.Errorf("unexpected title row: %v", rows[0])
		}
		if rows[1][1] != "INV-001" || rows[1][3] != "Acme" {
			t.Errorf("unexpected first invoice row: %v", rows[1])
		}
		if rows[2][1] != "INV-002" || rows[2][5] != "55.5" {
			t.Errorf("unexpected second invoice row: %v", rows[2])
		}
	})

	t.Run("line sheet carries every line keyed by invoice number", func(t *testing.T) {
		rows, err := f.GetRows("Invoice Lines")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 4 {
			t.Fatalf("expected title plus 3 rows, got %d", len(rows))
		}
		if rows[1][0] != "INV-001" || rows[2][0] != "INV-001" || rows[3][0] != "INV-002" {
			t.Errorf("unexpected line ownership: %v", rows)
		}
		if rows[1][6] != "60" || rows[2][6] != "40" {
			t.Errorf("expected line amounts 60 and 40, got %v and %v", rows[1][6], rows[2][6])
		}
	})

	t.Run("empty set still renders a workbook with title rows", func(t *testing.T) {
		data, err := exporter.Export(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close()

		rows, err := f.GetRows("Invoice Headers")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("expected only the title row, got %d rows", len(rows))
		}
	})
}
