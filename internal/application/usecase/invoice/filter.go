// Package invoice contains invoice-related use cases.
package invoice

import (
	"strings"

	"github.com/google/uuid"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// FilterParams is the loosely-typed bag of optional query parameters accepted
// at the HTTP boundary. Empty strings mean the parameter was not supplied.
type FilterParams struct {
	Vendor      string
	Currency    string
	InvoiceType string
	Search      string
	StartDate   string
	EndDate     string
	OwnerID     *uuid.UUID
}

// BuildFilter normalizes the parameter bag into an InvoiceFilter.
// Empty-string values are treated as absent. The date range only takes effect
// when both bounds are present; a one-sided range is ignored entirely.
// Vendor, currency and type are not validated against known vocabularies:
// unknown values simply match nothing.
func BuildFilter(params FilterParams) adapter.InvoiceFilter {
	filter := adapter.InvoiceFilter{
		Vendor:      strings.TrimSpace(params.Vendor),
		Currency:    strings.TrimSpace(params.Currency),
		InvoiceType: strings.TrimSpace(params.InvoiceType),
		Search:      strings.TrimSpace(params.Search),
		OwnerID:     params.OwnerID,
	}

	startDate := strings.TrimSpace(params.StartDate)
	endDate := strings.TrimSpace(params.EndDate)
	if startDate != "" && endDate != "" {
		filter.StartDate = startDate
		filter.EndDate = endDate
	}

	return filter
}
