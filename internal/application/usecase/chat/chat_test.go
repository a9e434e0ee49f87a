// Package chat contains the chat-related use cases.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/invoice"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

type fakeInvoiceRepository struct {
	invoices []*entity.Invoice
	findErr  error
}

func (r *fakeInvoiceRepository) Create(_ context.Context, _ *entity.Invoice) error {
	return errors.New("not implemented")
}

func (r *fakeInvoiceRepository) FindByNum(_ context.Context, invoiceNum string) (*entity.Invoice, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, inv := range r.invoices {
		if inv.Header.InvoiceNum == invoiceNum {
			return inv, nil
		}
	}
	return nil, domainerror.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepository) FindByFilter(_ context.Context, filter adapter.InvoiceFilter, pagination adapter.InvoicePagination) (*adapter.InvoiceListResult, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var matched []*entity.Invoice
	for _, inv := range r.invoices {
		if filter.Vendor != "" && inv.Header.VendorName != filter.Vendor {
			continue
		}
		if filter.InvoiceType != "" && string(inv.Header.InvoiceType) != filter.InvoiceType {
			continue
		}
		if filter.StartDate != "" && (inv.Header.InvoiceDate < filter.StartDate || inv.Header.InvoiceDate > filter.EndDate) {
			continue
		}
		matched = append(matched, inv)
	}
	return &adapter.InvoiceListResult{
		Invoices:   matched,
		Total:      int64(len(matched)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeInvoiceRepository) UpdateHeader(_ context.Context, _ string, _ adapter.HeaderUpdate, _ decimal.Decimal) error {
	return errors.New("not implemented")
}

func (r *fakeInvoiceRepository) UpdateAmount(_ context.Context, _ string, _ decimal.Decimal) error {
	return nil
}

func (r *fakeInvoiceRepository) DistinctVendors(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var vendors []string
	for _, inv := range r.invoices {
		if !seen[inv.Header.VendorName] {
			seen[inv.Header.VendorName] = true
			vendors = append(vendors, inv.Header.VendorName)
		}
	}
	return vendors, nil
}

type fakeAnalyticsRepository struct {
	summary *entity.InvoiceSummary
	err     error
}

func (r *fakeAnalyticsRepository) GetSummary(_ context.Context, _ adapter.InvoiceFilter) (*entity.InvoiceSummary, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.summary, nil
}

type stubAIService struct {
	answer     string
	err        error
	lastPrompt string
}

func (s *stubAIService) IsAvailable() bool { return true }

func (s *stubAIService) Answer(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func chatTestInvoice(num, vendor, date string) *entity.Invoice {
	amount := decimal.RequireFromString("100.00")
	return &entity.Invoice{
		Header: entity.InvoiceHeader{
			InvoiceNum:    num,
			VendorName:    vendor,
			InvoiceDate:   date,
			InvoiceAmount: amount,
			CurrencyCode:  "USD",
			InvoiceType:   entity.InvoiceTypeStandard,
		},
		Lines: []entity.InvoiceLine{
			{LineNumber: 1, LineType: "Item", LineAmount: amount},
		},
	}
}

func newTestAskUseCase(repo *fakeInvoiceRepository, analyticsRepo *fakeAnalyticsRepository, ai *stubAIService) *AskUseCase {
	return NewAskUseCase(repo, analyticsRepo, invoice.NewReconciler(repo), ai)
}

func defaultSummary() *entity.InvoiceSummary {
	return &entity.InvoiceSummary{
		TotalCount:  3,
		TotalAmount: decimal.RequireFromString("300.00"),
	}
}

func TestAskUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("vendor question returns matches and model answer", func(t *testing.T) {
		repo := &fakeInvoiceRepository{invoices: []*entity.Invoice{
			chatTestInvoice("INV-1", "Acme", "2024-01-05"),
			chatTestInvoice("INV-2", "Globex", "2024-01-10"),
		}}
		ai := &stubAIService{answer: "Acme has one invoice."}
		uc := newTestAskUseCase(repo, &fakeAnalyticsRepository{summary: defaultSummary()}, ai)

		output := uc.Execute(ctx, AskInput{Message: "show invoices from Acme"})

		if output.Answer != "Acme has one invoice." {
			t.Errorf("unexpected answer: %q", output.Answer)
		}
		if len(output.Invoices) != 1 || output.Invoices[0].Header.InvoiceNum != "INV-1" {
			t.Errorf("expected INV-1 as the only match, got %+v", output.Invoices)
		}
		if !strings.Contains(ai.lastPrompt, "INV-1") {
			t.Error("expected prompt to mention the matched invoice")
		}
		if !strings.Contains(ai.lastPrompt, "3 invoices totaling 300") {
			t.Errorf("expected prompt to carry aggregate stats, got %q", ai.lastPrompt)
		}
	})

	t.Run("unknown invoice number yields no matches, not a failure", func(t *testing.T) {
		repo := &fakeInvoiceRepository{}
		ai := &stubAIService{answer: "No such invoice."}
		uc := newTestAskUseCase(repo, &fakeAnalyticsRepository{summary: defaultSummary()}, ai)

		output := uc.Execute(ctx, AskInput{Message: "find invoice INV-404"})

		if output.Answer != "No such invoice." {
			t.Errorf("unexpected answer: %q", output.Answer)
		}
		if len(output.Invoices) != 0 {
			t.Errorf("expected no matches, got %d", len(output.Invoices))
		}
		if !strings.Contains(ai.lastPrompt, "No invoices matched") {
			t.Error("expected prompt to state that nothing matched")
		}
	})

	t.Run("prompt caps the summaries but the response list is unclipped", func(t *testing.T) {
		repo := &fakeInvoiceRepository{}
		for i := 1; i <= 8; i++ {
			repo.invoices = append(repo.invoices,
				chatTestInvoice(fmt.Sprintf("INV-%d", i), "Acme", "2024-02-01"))
		}
		ai := &stubAIService{answer: "Eight invoices."}
		uc := newTestAskUseCase(repo, &fakeAnalyticsRepository{summary: defaultSummary()}, ai)

		output := uc.Execute(ctx, AskInput{Message: "show invoices from Acme"})

		if len(output.Invoices) != 8 {
			t.Errorf("expected 8 matches in the response, got %d", len(output.Invoices))
		}
		if !strings.Contains(ai.lastPrompt, "...and 3 more matching invoices") {
			t.Errorf("expected prompt to note the 3 clipped invoices, got %q", ai.lastPrompt)
		}
	})

	t.Run("model failure degrades to the fallback answer", func(t *testing.T) {
		repo := &fakeInvoiceRepository{invoices: []*entity.Invoice{
			chatTestInvoice("INV-1", "Acme", "2024-01-05"),
		}}
		ai := &stubAIService{err: domainerror.ErrAIServiceUnavailable}
		uc := newTestAskUseCase(repo, &fakeAnalyticsRepository{summary: defaultSummary()}, ai)

		output := uc.Execute(ctx, AskInput{Message: "show invoices from Acme"})

		if output.Answer != fallbackAnswer {
			t.Errorf("expected fallback answer, got %q", output.Answer)
		}
		if len(output.Invoices) != 0 {
			t.Error("expected no invoices alongside the fallback answer")
		}
	})

	t.Run("repository failure degrades to the fallback answer", func(t *testing.T) {
		repo := &fakeInvoiceRepository{findErr: errors.New("connection refused")}
		ai := &stubAIService{answer: "never reached"}
		uc := newTestAskUseCase(repo, &fakeAnalyticsRepository{summary: defaultSummary()}, ai)

		output := uc.Execute(ctx, AskInput{Message: "show invoices from Acme"})

		if output.Answer != fallbackAnswer {
			t.Errorf("expected fallback answer, got %q", output.Answer)
		}
	})

	t.Run("blank message degrades to the fallback answer", func(t *testing.T) {
		uc := newTestAskUseCase(&fakeInvoiceRepository{}, &fakeAnalyticsRepository{summary: defaultSummary()}, &stubAIService{})

		output := uc.Execute(ctx, AskInput{Message: "   "})

		if output.Answer != fallbackAnswer {
			t.Errorf("expected fallback answer, got %q", output.Answer)
		}
	})
}
