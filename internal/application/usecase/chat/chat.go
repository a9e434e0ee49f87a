// Package chat contains the chat-related use cases.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/analytics"
	"github.com/invoice-hub/backend/internal/application/usecase/invoice"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

// maxPromptInvoices caps how many matched invoices are summarized in the
// outbound prompt. The response still carries the full match list.
const maxPromptInvoices = 5

// fallbackAnswer is returned whenever any stage of the chat flow fails.
const fallbackAnswer = "I'm sorry, I couldn't look that up right now. Please try asking again in a moment."

// AskInput represents the input for a chat question.
type AskInput struct {
	Message string
}

// AskOutput represents the chat answer plus the full unclipped match list.
type AskOutput struct {
	Answer   string
	Invoices []*entity.Invoice
}

// AskUseCase orchestrates a chat turn: intent extraction, invoice retrieval,
// prompt assembly and the external model call.
type AskUseCase struct {
	invoiceRepo   adapter.InvoiceRepository
	analyticsRepo analytics.Repository
	reconciler    *invoice.Reconciler
	aiService     adapter.AIService
	now           func() time.Time
}

// NewAskUseCase creates a new AskUseCase instance.
func NewAskUseCase(
	invoiceRepo adapter.InvoiceRepository,
	analyticsRepo analytics.Repository,
	reconciler *invoice.Reconciler,
	aiService adapter.AIService,
) *AskUseCase {
	return &AskUseCase{
		invoiceRepo:   invoiceRepo,
		analyticsRepo: analyticsRepo,
		reconciler:    reconciler,
		aiService:     aiService,
		now:           time.Now,
	}
}

// Execute answers a free-text question about the invoice data. Any failure at
// any stage degrades to a fixed conversational fallback with no invoices
// attached; the chat surface never exposes an HTTP error to the user.
func (uc *AskUseCase) Execute(ctx context.Context, input AskInput) *AskOutput {
	output, err := uc.ask(ctx, input.Message)
	if err != nil {
		slog.Error("Chat turn failed, returning fallback answer", "error", err)
		return &AskOutput{Answer: fallbackAnswer}
	}
	return output
}

func (uc *AskUseCase) ask(ctx context.Context, message string) (*AskOutput, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domainerror.ErrEmptyChatMessage
	}

	matches, err := uc.findMatches(ctx, message)
	if err != nil {
		return nil, err
	}
	if err := uc.reconciler.ReconcileAll(ctx, matches); err != nil {
		return nil, err
	}

	prompt, err := uc.buildPrompt(ctx, message, matches)
	if err != nil {
		return nil, err
	}

	answer, err := uc.aiService.Answer(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &AskOutput{
		Answer:   answer,
		Invoices: matches,
	}, nil
}

// findMatches resolves the extracted intent against the store. An invoice
// number short-circuits to a direct lookup; an unknown number simply yields
// no matches rather than an error.
func (uc *AskUseCase) findMatches(ctx context.Context, message string) ([]*entity.Invoice, error) {
	intent := ExtractIntent(message, uc.now())

	if intent.InvoiceNum != "" {
		inv, err := uc.invoiceRepo.FindByNum(ctx, intent.InvoiceNum)
		if err != nil {
			if errors.Is(err, domainerror.ErrInvoiceNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return []*entity.Invoice{inv}, nil
	}

	filter := invoice.BuildFilter(invoice.FilterParams{
		Vendor:      intent.Vendor,
		InvoiceType: intent.InvoiceType,
		StartDate:   intent.StartDate,
		EndDate:     intent.EndDate,
	})

	result, err := uc.invoiceRepo.FindByFilter(ctx, filter, adapter.InvoicePagination{Page: 1, Limit: 0})
	if err != nil {
		return nil, err
	}
	return result.Invoices, nil
}

// buildPrompt assembles the single outbound prompt: a system section with
// aggregate stats and the record shape, at most five matched-invoice
// summaries with a note of how many more exist, then the raw user message.
func (uc *AskUseCase) buildPrompt(ctx context.Context, message string, matches []*entity.Invoice) (string, error) {
	summary, err := uc.analyticsRepo.GetSummary(ctx, adapter.InvoiceFilter{})
	if err != nil {
		return "", err
	}
	vendors, err := uc.invoiceRepo.DistinctVendors(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are an assistant answering questions about a company's invoice records.\n")
	sb.WriteString(fmt.Sprintf("The dataset holds %d invoices totaling %s.\n", summary.TotalCount, summary.TotalAmount.String()))
	if len(vendors) > 0 {
		sb.WriteString("Known vendors: " + strings.Join(vendors, ", ") + ".\n")
	}
	sb.WriteString("Each invoice has a header (org code, invoice number, date, vendor, amount, currency, payment term, type) and line items (line number, type, description, quantity, unit price, amount).\n")

	if len(matches) > 0 {
		sb.WriteString("\nInvoices matching the question:\n")
		shown := matches
		if len(shown) > maxPromptInvoices {
			shown = shown[:maxPromptInvoices]
		}
		for _, inv := range shown {
			sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s %s | %s\n",
				inv.Header.InvoiceNum,
				inv.Header.VendorName,
				inv.Header.InvoiceDate,
				inv.Header.InvoiceAmount.String(),
				inv.Header.CurrencyCode,
				inv.Header.InvoiceType,
			))
		}
		if remaining := len(matches) - len(shown); remaining > 0 {
			sb.WriteString(fmt.Sprintf("...and %d more matching invoices not shown.\n", remaining))
		}
	} else {
		sb.WriteString("\nNo invoices matched the question.\n")
	}

	sb.WriteString("\nUser question: " + message)
	return sb.String(), nil
}
