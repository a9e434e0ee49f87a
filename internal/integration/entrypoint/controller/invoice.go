// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/invoice"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/dto"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	listUseCase    *invoice.ListInvoicesUseCase
	getUseCase     *invoice.GetInvoiceUseCase
	updateUseCase  *invoice.UpdateInvoiceUseCase
	createUseCase  *invoice.CreateInvoiceUseCase
	vendorsUseCase *invoice.ListVendorsUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	listUseCase *invoice.ListInvoicesUseCase,
	getUseCase *invoice.GetInvoiceUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	createUseCase *invoice.CreateInvoiceUseCase,
	vendorsUseCase *invoice.ListVendorsUseCase,
) *InvoiceController {
	return &InvoiceController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		createUseCase:  createUseCase,
		vendorsUseCase: vendorsUseCase,
	}
}

// parseFilterParams reads the shared filter query parameters. The parameter
// names are part of the public API surface and must not change.
func parseFilterParams(ctx *gin.Context) invoice.FilterParams {
	return invoice.FilterParams{
		Vendor:      ctx.Query("vendor"),
		Currency:    ctx.Query("currency"),
		InvoiceType: ctx.Query("invoiceType"),
		Search:      ctx.Query("search"),
		StartDate:   ctx.Query("startDate"),
		EndDate:     ctx.Query("endDate"),
	}
}

// parsePagination reads page and limit. An explicit limit=0 disables
// pagination; an absent limit falls back to the default page size.
func parsePagination(ctx *gin.Context) (page, limit int) {
	page = 1
	limit = 20

	if pageStr := ctx.Query("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
			page = v
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v >= 0 {
			limit = v
		}
	}
	return page, limit
}

// List handles GET /api/invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), invoice.ListInvoicesInput{
		Params: parseFilterParams(ctx),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(
		output.Invoices, output.Total, output.Page, output.Limit, output.TotalPages,
	))
}

// ListOwn handles GET /api/invoices/user requests.
func (c *InvoiceController) ListOwn(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	page, limit := parsePagination(ctx)
	params := parseFilterParams(ctx)
	params.OwnerID = &userID

	output, err := c.listUseCase.Execute(ctx.Request.Context(), invoice.ListInvoicesInput{
		Params: params,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(
		output.Invoices, output.Total, output.Page, output.Limit, output.TotalPages,
	))
}

// Get handles GET /api/invoices/:invoiceNum requests.
func (c *InvoiceController) Get(ctx *gin.Context) {
	invoiceNum := ctx.Param("invoiceNum")

	inv, err := c.getUseCase.Execute(ctx.Request.Context(), invoiceNum)
	if err != nil {
		c.handleInvoiceError(ctx, invoiceNum, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// Update handles PUT /api/invoices/:invoiceNum requests.
func (c *InvoiceController) Update(ctx *gin.Context) {
	invoiceNum := ctx.Param("invoiceNum")

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingInvoiceFields),
			Details: dto.ValidationDetails(err),
		})
		return
	}

	update := adapter.HeaderUpdate{
		OrgCode:        req.OrgCode,
		InvoiceDate:    req.InvoiceDate,
		VendorName:     req.VendorName,
		VendorSiteCode: req.VendorSiteCode,
		CurrencyCode:   req.CurrencyCode,
		PaymentTerm:    req.PaymentTerm,
		DocumentLink:   req.DocumentLink,
	}
	if req.InvoiceType != nil {
		invoiceType := entity.InvoiceType(*req.InvoiceType)
		update.InvoiceType = &invoiceType
	}

	inv, err := c.updateUseCase.Execute(ctx.Request.Context(), invoice.UpdateInvoiceInput{
		InvoiceNum: invoiceNum,
		Update:     update,
	})
	if err != nil {
		c.handleInvoiceError(ctx, invoiceNum, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// CreateOwn handles POST /api/invoices/user requests.
func (c *InvoiceController) CreateOwn(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingInvoiceFields),
			Details: dto.ValidationDetails(err),
		})
		return
	}

	inv, err := c.createUseCase.Execute(ctx.Request.Context(), invoice.CreateInvoiceInput{
		OwnerID: userID,
		Header:  dto.HeaderFromPayload(req.InvoiceHeader),
		Lines:   dto.LinesFromPayload(req.InvoiceLines),
	})
	if err != nil {
		c.handleInvoiceError(ctx, req.InvoiceHeader.InvoiceNum, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// Vendors handles GET /api/vendors requests.
func (c *InvoiceController) Vendors(ctx *gin.Context) {
	vendors, err := c.vendorsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve vendors",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.VendorListResponse{Vendors: vendors})
}

func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, invoiceNum string, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvoiceNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Invoice " + invoiceNum + " not found",
			Code:  string(domainerror.ErrCodeInvoiceNotFound),
		})
	case errors.Is(err, domainerror.ErrDuplicateInvoiceNum):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice " + invoiceNum + " already exists",
			Code:  string(domainerror.ErrCodeDuplicateInvoiceNum),
		})
	case errors.Is(err, domainerror.ErrInvalidInvoiceType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice type must be Standard, Credit or Prepayment",
			Code:  string(domainerror.ErrCodeInvalidInvoiceType),
		})
	case errors.Is(err, domainerror.ErrInvalidInvoiceDate):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice date must be a YYYY-MM-DD date",
			Code:  string(domainerror.ErrCodeInvalidInvoiceDate),
		})
	case errors.Is(err, domainerror.ErrEmptyInvoiceLines):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice must have at least one line item",
			Code:  string(domainerror.ErrCodeEmptyInvoiceLines),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}
