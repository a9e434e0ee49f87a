// Package error defines domain-specific errors for the Invoice Hub application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrDuplicateInvoiceNum is returned when creating an invoice whose number already exists.
	ErrDuplicateInvoiceNum = errors.New("invoice number already exists")

	// ErrInvalidInvoiceType is returned when the invoice type is not Standard, Credit or Prepayment.
	ErrInvalidInvoiceType = errors.New("invalid invoice type")

	// ErrInvalidInvoiceDate is returned when the invoice date is not a valid ISO date string.
	ErrInvalidInvoiceDate = errors.New("invalid invoice date")

	// ErrEmptyInvoiceLines is returned when an invoice is created without line items.
	ErrEmptyInvoiceLines = errors.New("invoice must have at least one line item")

	// ErrNotAuthorizedToModifyInvoice is returned when a user tries to modify an invoice they do not own.
	ErrNotAuthorizedToModifyInvoice = errors.New("not authorized to modify invoice")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvoiceNotFound      InvoiceErrorCode = "INV-010001"
	ErrCodeDuplicateInvoiceNum  InvoiceErrorCode = "INV-010002"
	ErrCodeInvalidInvoiceType   InvoiceErrorCode = "INV-010003"
	ErrCodeInvalidInvoiceDate   InvoiceErrorCode = "INV-010004"
	ErrCodeEmptyInvoiceLines    InvoiceErrorCode = "INV-010005"
	ErrCodeMissingInvoiceFields InvoiceErrorCode = "INV-010006"
	ErrCodeNotAuthorizedInvoice InvoiceErrorCode = "INV-010007"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
