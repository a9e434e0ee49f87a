// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

func TestInvoiceRepository_CreateAndFindByNum(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	inv := entity.NewInvoice(entity.InvoiceHeader{
		OrgCode:      "ORG-1",
		InvoiceNum:   "INV-001",
		InvoiceDate:  "2024-03-10",
		VendorName:   "Acme",
		CurrencyCode: "USD",
		InvoiceType:  entity.InvoiceTypeStandard,
	}, []entity.InvoiceLine{
		{LineNumber: 2, LineType: "Tax", LineAmount: decimal.RequireFromString("8.00")},
		{LineNumber: 1, LineType: "Item", LineAmount: decimal.RequireFromString("92.00")},
	}, nil, entity.InvoiceSourceManual)

	if err := repo.Create(ctx, inv); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	t.Run("round trip preserves header and orders lines", func(t *testing.T) {
		found, err := repo.FindByNum(ctx, "INV-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Header.VendorName != "Acme" {
			t.Errorf("expected vendor Acme, got %s", found.Header.VendorName)
		}
		if !found.Header.InvoiceAmount.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected amount 100.00, got %s", found.Header.InvoiceAmount)
		}
		if len(found.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(found.Lines))
		}
		if found.Lines[0].LineNumber != 1 || found.Lines[1].LineNumber != 2 {
			t.Errorf("expected lines ordered by line number, got %d then %d",
				found.Lines[0].LineNumber, found.Lines[1].LineNumber)
		}
	})

	t.Run("unknown number yields not found", func(t *testing.T) {
		_, err := repo.FindByNum(ctx, "INV-404")
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		dup := entity.NewInvoice(entity.InvoiceHeader{
			InvoiceNum:  "INV-001",
			InvoiceDate: "2024-03-11",
			VendorName:  "Globex",
			InvoiceType: entity.InvoiceTypeStandard,
		}, []entity.InvoiceLine{
			{LineNumber: 1, LineAmount: decimal.RequireFromString("1.00")},
		}, nil, entity.InvoiceSourceManual)

		err := repo.Create(ctx, dup)
		if !errors.Is(err, domainerror.ErrDuplicateInvoiceNum) {
			t.Errorf("expected ErrDuplicateInvoiceNum, got %v", err)
		}
	})
}

func TestInvoiceRepository_FindByFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	seed(t, db,
		seedInvoice{num: "INV-A1", vendor: "Acme", date: "2024-01-05", invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"100.00"}},
		seedInvoice{num: "INV-A2", vendor: "Acme", date: "2024-02-20", currency: "EUR", invoiceType: entity.InvoiceTypeCredit, lineAmounts: []string{"50.00"}},
		seedInvoice{num: "INV-B1", vendor: "Globex", date: "2024-01-15", invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"75.00"}, ownerID: &ownerID},
		seedInvoice{num: "INV-B2", vendor: "Globex", date: "2024-03-01", invoiceType: entity.InvoiceTypePrepayment, lineAmounts: []string{"25.00"}},
	)

	find := func(t *testing.T, filter adapter.InvoiceFilter) []*entity.Invoice {
		t.Helper()
		result, err := repo.FindByFilter(ctx, filter, adapter.InvoicePagination{Page: 1, Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result.Invoices
	}

	nums := func(invoices []*entity.Invoice) []string {
		out := make([]string, len(invoices))
		for i, inv := range invoices {
			out[i] = inv.Header.InvoiceNum
		}
		return out
	}

	t.Run("exact vendor match", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{Vendor: "Acme"}))
		if len(got) != 2 {
			t.Errorf("expected 2 Acme invoices, got %v", got)
		}
	})

	t.Run("vendor match is exact not partial", func(t *testing.T) {
		got := find(t, adapter.InvoiceFilter{Vendor: "Acm"})
		if len(got) != 0 {
			t.Errorf("expected no matches for partial vendor, got %v", nums(got))
		}
	})

	t.Run("search is case-insensitive substring over number and vendor", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{Search: "glob"}))
		if len(got) != 2 {
			t.Errorf("expected 2 matches for glob, got %v", got)
		}
		got = nums(find(t, adapter.InvoiceFilter{Search: "inv-a"}))
		if len(got) != 2 {
			t.Errorf("expected 2 matches for inv-a, got %v", got)
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{StartDate: "2024-01-05", EndDate: "2024-01-15"}))
		if len(got) != 2 {
			t.Errorf("expected both January invoices, got %v", got)
		}
	})

	t.Run("type and currency filters", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{InvoiceType: "Standard"}))
		if len(got) != 2 {
			t.Errorf("expected 2 Standard invoices, got %v", got)
		}
		got = nums(find(t, adapter.InvoiceFilter{Currency: "EUR"}))
		if len(got) != 1 || got[0] != "INV-A2" {
			t.Errorf("expected only INV-A2 in EUR, got %v", got)
		}
	})

	t.Run("owner filter", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{OwnerID: &ownerID}))
		if len(got) != 1 || got[0] != "INV-B1" {
			t.Errorf("expected only INV-B1 for owner, got %v", got)
		}
	})

	t.Run("invoice number short-circuits other predicates", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{InvoiceNum: "INV-A1", Vendor: "Globex"}))
		if len(got) != 1 || got[0] != "INV-A1" {
			t.Errorf("expected INV-A1 despite conflicting vendor, got %v", got)
		}
	})

	t.Run("results ordered by date descending", func(t *testing.T) {
		got := nums(find(t, adapter.InvoiceFilter{}))
		want := []string{"INV-B2", "INV-A2", "INV-B1", "INV-A1"}
		if len(got) != len(want) {
			t.Fatalf("expected %d invoices, got %v", len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})
}

func TestInvoiceRepository_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		seed(t, db, seedInvoice{
			num:         fmt.Sprintf("INV-%03d", i),
			vendor:      "Acme",
			date:        fmt.Sprintf("2024-01-%02d", i),
			invoiceType: entity.InvoiceTypeStandard,
			lineAmounts: []string{"10.00"},
		})
	}

	t.Run("second page of ten", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{}, adapter.InvoicePagination{Page: 2, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 25 {
			t.Errorf("expected total 25, got %d", result.Total)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
		if len(result.Invoices) != 10 {
			t.Fatalf("expected 10 invoices on page 2, got %d", len(result.Invoices))
		}
		// Date descending: page 2 covers days 15 down to 6.
		if got := result.Invoices[0].Header.InvoiceNum; got != "INV-015" {
			t.Errorf("expected INV-015 first on page 2, got %s", got)
		}
		if got := result.Invoices[9].Header.InvoiceNum; got != "INV-006" {
			t.Errorf("expected INV-006 last on page 2, got %s", got)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{}, adapter.InvoicePagination{Page: 3, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Invoices) != 5 {
			t.Errorf("expected 5 invoices on page 3, got %d", len(result.Invoices))
		}
	})

	t.Run("page beyond the end is empty but keeps totals", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{}, adapter.InvoicePagination{Page: 9, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Invoices) != 0 {
			t.Errorf("expected empty page, got %d invoices", len(result.Invoices))
		}
		if result.Total != 25 || result.TotalPages != 3 {
			t.Errorf("expected total 25 over 3 pages, got %d over %d", result.Total, result.TotalPages)
		}
	})

	t.Run("limit zero returns everything in one page", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{}, adapter.InvoicePagination{Page: 1, Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Invoices) != 25 {
			t.Errorf("expected all 25 invoices, got %d", len(result.Invoices))
		}
		if result.TotalPages != 1 {
			t.Errorf("expected 1 page, got %d", result.TotalPages)
		}
	})
}

func TestInvoiceRepository_Updates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	seed(t, db, seedInvoice{
		num: "INV-U1", vendor: "Acme", date: "2024-04-01",
		invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"60.00", "40.00"},
	})

	t.Run("partial header update leaves other fields intact", func(t *testing.T) {
		vendor := "Globex"
		invoiceType := entity.InvoiceTypeCredit
		err := repo.UpdateHeader(ctx, "INV-U1", adapter.HeaderUpdate{
			VendorName:  &vendor,
			InvoiceType: &invoiceType,
		}, decimal.RequireFromString("100.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByNum(ctx, "INV-U1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Header.VendorName != "Globex" {
			t.Errorf("expected vendor Globex, got %s", found.Header.VendorName)
		}
		if found.Header.InvoiceType != entity.InvoiceTypeCredit {
			t.Errorf("expected Credit type, got %s", found.Header.InvoiceType)
		}
		if found.Header.InvoiceDate != "2024-04-01" {
			t.Errorf("expected untouched date, got %s", found.Header.InvoiceDate)
		}
		if found.Header.OrgCode != "ORG-1" {
			t.Errorf("expected untouched org code, got %s", found.Header.OrgCode)
		}
	})

	t.Run("update of unknown invoice yields not found", func(t *testing.T) {
		err := repo.UpdateHeader(ctx, "INV-404", adapter.HeaderUpdate{}, decimal.Zero)
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("amount update persists", func(t *testing.T) {
		want := decimal.RequireFromString("123.45")
		if err := repo.UpdateAmount(ctx, "INV-U1", want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, err := repo.FindByNum(ctx, "INV-U1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Header.InvoiceAmount.Equal(want) {
			t.Errorf("expected amount %s, got %s", want, found.Header.InvoiceAmount)
		}
	})
}

func TestInvoiceRepository_DistinctVendors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	seed(t, db,
		seedInvoice{num: "INV-V1", vendor: "Globex", date: "2024-01-01", invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"1.00"}},
		seedInvoice{num: "INV-V2", vendor: "Acme", date: "2024-01-02", invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"1.00"}},
		seedInvoice{num: "INV-V3", vendor: "Acme", date: "2024-01-03", invoiceType: entity.InvoiceTypeStandard, lineAmounts: []string{"1.00"}},
	)

	vendors, err := repo.DistinctVendors(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Acme", "Globex"}
	if len(vendors) != len(want) {
		t.Fatalf("expected %v, got %v", want, vendors)
	}
	for i := range want {
		if vendors[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], vendors[i])
		}
	}
}
