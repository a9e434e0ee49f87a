// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/invoice-hub/backend/internal/domain/entity"

// ChatRequest represents the request body for a chat question.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// ChatResponse represents the chat answer plus the matched invoices.
type ChatResponse struct {
	Answer   string            `json:"answer"`
	Invoices []InvoiceResponse `json:"invoices,omitempty"`
}

// ToChatResponse converts a chat result to its API shape.
func ToChatResponse(answer string, invoices []*entity.Invoice) ChatResponse {
	resp := ChatResponse{Answer: answer}
	if len(invoices) > 0 {
		resp.Invoices = make([]InvoiceResponse, len(invoices))
		for i, inv := range invoices {
			resp.Invoices[i] = ToInvoiceResponse(inv)
		}
	}
	return resp
}
