// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/application/usecase/analytics"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the invoice summary endpoint.
type AnalyticsController struct {
	summaryUseCase *analytics.GetSummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(summaryUseCase *analytics.GetSummaryUseCase) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /api/analytics/summary requests. It accepts the same
// filter parameters as the listing endpoint and aggregates over the full
// matching set regardless of pagination.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{
		Params: parseFilterParams(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute invoice summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceSummaryResponse(summary))
}
