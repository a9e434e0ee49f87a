// Package chat contains the chat-related use cases.
package chat

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

// Intent is the structured filter extracted from a free-text question.
// A non-empty InvoiceNum is exclusive: it short-circuits to a direct lookup
// and every other signal is discarded.
type Intent struct {
	InvoiceNum  string
	Vendor      string
	InvoiceType string
	StartDate   string
	EndDate     string
}

// IsEmpty reports whether no signal was extracted at all.
func (i Intent) IsEmpty() bool {
	return i.InvoiceNum == "" && i.Vendor == "" && i.InvoiceType == "" && i.StartDate == ""
}

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var typesByKeyword = map[string]entity.InvoiceType{
	"standard":   entity.InvoiceTypeStandard,
	"credit":     entity.InvoiceTypeCredit,
	"prepayment": entity.InvoiceTypePrepayment,
}

// The extraction rules run in a fixed order: invoice number first (exclusive),
// then vendor, month and type, which combine into one filter. Invoice-number
// tokens must contain at least one digit so that "invoice from Acme" does not
// capture "from" as a number.
var (
	invoiceNumPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)#\s*([A-Za-z0-9][A-Za-z0-9-]*\d[A-Za-z0-9-]*|\d+)`),
		regexp.MustCompile(`(?i)\binvoice\b\s+([A-Za-z0-9-]*\d[A-Za-z0-9-]*)`),
		regexp.MustCompile(`(?i)\bnumber\b\s+([A-Za-z0-9-]*\d[A-Za-z0-9-]*)`),
	}
	vendorPattern        = regexp.MustCompile(`(?i)\b(?:vendor|from|by)\s+([A-Za-z][A-Za-z0-9&._-]*)`)
	vendorBeforeInvoices = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z0-9&._-]*)\s+invoices?\b`)
	typeKeywordPattern   = regexp.MustCompile(`(?i)\btype\s+(standard|credit|prepayment)\b`)
	typeBeforeInvoices   = regexp.MustCompile(`(?i)\b(standard|credit|prepayment)\s+invoices?\b`)
	vendorStopWords      = map[string]bool{"invoice": true, "invoices": true, "the": true, "a": true, "an": true, "my": true, "all": true, "last": true, "this": true}
)

// ExtractIntent parses a free-text question into an Intent. Month names map
// to the first and last day of that month in the calendar year of now.
// The heuristics are deliberately best effort: no negation, no multi-vendor,
// no relative dates.
func ExtractIntent(message string, now time.Time) Intent {
	var intent Intent

	// Rule 1: exact invoice number, exclusive.
	for _, p := range invoiceNumPatterns {
		if m := p.FindStringSubmatch(message); m != nil {
			intent.InvoiceNum = m[1]
			return intent
		}
	}

	// Rule 2: vendor. "from X" and "by X" often precede month names, so those
	// captures are skipped along with type keywords and stop words.
	for _, m := range vendorPattern.FindAllStringSubmatch(message, -1) {
		candidate := m[1]
		lower := strings.ToLower(candidate)
		if _, isMonth := monthsByName[lower]; isMonth {
			continue
		}
		if _, isType := typesByKeyword[lower]; isType {
			continue
		}
		if vendorStopWords[lower] {
			continue
		}
		intent.Vendor = candidate
		break
	}
	if intent.Vendor == "" {
		if m := vendorBeforeInvoices.FindStringSubmatch(message); m != nil {
			candidate := m[1]
			lower := strings.ToLower(candidate)
			_, isType := typesByKeyword[lower]
			_, isMonth := monthsByName[lower]
			if !isType && !isMonth && !vendorStopWords[lower] {
				intent.Vendor = candidate
			}
		}
	}

	// Rule 3: literal month name, mapped into the current calendar year.
	lowerMessage := strings.ToLower(message)
	for name, month := range monthsByName {
		if !containsWord(lowerMessage, name) {
			continue
		}
		year := now.Year()
		firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastDay := firstDay.AddDate(0, 1, -1)
		intent.StartDate = firstDay.Format("2006-01-02")
		intent.EndDate = lastDay.Format("2006-01-02")
		break
	}

	// Rule 4: invoice type, normalized to title case.
	if m := typeKeywordPattern.FindStringSubmatch(message); m != nil {
		intent.InvoiceType = string(typesByKeyword[strings.ToLower(m[1])])
	} else if m := typeBeforeInvoices.FindStringSubmatch(message); m != nil {
		intent.InvoiceType = string(typesByKeyword[strings.ToLower(m[1])])
	}

	return intent
}

// containsWord reports whether text contains word with word boundaries on
// both sides. Both arguments must already be lowercase.
func containsWord(text, word string) bool {
	matched, _ := regexp.MatchString(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(word)), text)
	return matched
}
