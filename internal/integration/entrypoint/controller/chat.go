// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/application/usecase/chat"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the assistant endpoint.
type ChatController struct {
	askUseCase *chat.AskUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(askUseCase *chat.AskUseCase) *ChatController {
	return &ChatController{
		askUseCase: askUseCase,
	}
}

// Ask handles POST /api/chat requests. A malformed body is the only error
// surfaced to the caller; everything downstream degrades to a fallback
// answer inside the use case, so this handler never returns a 5xx.
func (c *ChatController) Ask(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Message is required",
			Code:    string(domainerror.ErrCodeEmptyChatMessage),
			Details: dto.ValidationDetails(err),
		})
		return
	}

	output := c.askUseCase.Execute(ctx.Request.Context(), chat.AskInput{
		Message: req.Message,
	})

	ctx.JSON(http.StatusOK, dto.ToChatResponse(output.Answer, output.Invoices))
}
