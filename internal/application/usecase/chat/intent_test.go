// Package chat contains the chat-related use cases.
package chat

import (
	"testing"
	"time"
)

func TestExtractIntent(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{
			name:    "invoice number after the word invoice",
			message: "Find invoice INV-2023-004",
			want:    Intent{InvoiceNum: "INV-2023-004"},
		},
		{
			name:    "invoice number after a hash",
			message: "what happened to #12345?",
			want:    Intent{InvoiceNum: "12345"},
		},
		{
			name:    "invoice number after the word number",
			message: "show me number INV-001 please",
			want:    Intent{InvoiceNum: "INV-001"},
		},
		{
			name:    "invoice number discards every other signal",
			message: "invoice INV-9 from Acme in January",
			want:    Intent{InvoiceNum: "INV-9"},
		},
		{
			name:    "vendor after from",
			message: "show invoices from Acme",
			want:    Intent{Vendor: "Acme"},
		},
		{
			name:    "vendor before the word invoices",
			message: "Show me BuildSmart invoices from January",
			want:    Intent{Vendor: "BuildSmart", StartDate: "2024-01-01", EndDate: "2024-01-31"},
		},
		{
			name:    "month name maps to current-year range",
			message: "what did we spend in March?",
			want:    Intent{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		},
		{
			name:    "month with 30 days",
			message: "totals for April",
			want:    Intent{StartDate: "2024-04-01", EndDate: "2024-04-30"},
		},
		{
			name:    "type before the word invoices",
			message: "list all credit invoices",
			want:    Intent{InvoiceType: "Credit"},
		},
		{
			name:    "type after the word type",
			message: "anything of type prepayment?",
			want:    Intent{InvoiceType: "Prepayment"},
		},
		{
			name:    "vendor and type combine",
			message: "standard invoices from Globex",
			want:    Intent{Vendor: "Globex", InvoiceType: "Standard"},
		},
		{
			name:    "month name is not a vendor",
			message: "invoices from January",
			want:    Intent{StartDate: "2024-01-01", EndDate: "2024-01-31"},
		},
		{
			name:    "stop word is not a vendor",
			message: "show me all invoices",
			want:    Intent{},
		},
		{
			name:    "the word invoice without a digit is not a number",
			message: "invoice from Acme",
			want:    Intent{Vendor: "Acme"},
		},
		{
			name:    "no signal at all",
			message: "how are you today?",
			want:    Intent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIntent(tt.message, now)
			if got != tt.want {
				t.Errorf("ExtractIntent(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestIntentIsEmpty(t *testing.T) {
	if !(Intent{}).IsEmpty() {
		t.Error("expected zero intent to be empty")
	}
	if (Intent{Vendor: "Acme"}).IsEmpty() {
		t.Error("expected intent with vendor to be non-empty")
	}
	if (Intent{StartDate: "2024-01-01", EndDate: "2024-01-31"}).IsEmpty() {
		t.Error("expected intent with date range to be non-empty")
	}
}
