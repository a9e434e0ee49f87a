// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/application/usecase/export"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles the spreadsheet export endpoint.
type ExportController struct {
	exportUseCase *export.ExportInvoicesUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportInvoicesUseCase) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
	}
}

// Download handles GET /api/export/invoices requests. It streams an xlsx
// workbook containing every invoice matching the filter parameters.
func (c *ExportController) Download(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportInvoicesInput{
		Params: parseFilterParams(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export invoices",
		})
		return
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, output.Data)
}
