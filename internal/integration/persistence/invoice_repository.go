// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// applyInvoiceFilter translates the normalized filter into query conditions.
// Shared with the analytics repository so aggregates and listings always see
// the same filtered set.
func applyInvoiceFilter(query *gorm.DB, filter adapter.InvoiceFilter) *gorm.DB {
	if filter.InvoiceNum != "" {
		// The chat short-circuit: every other predicate is ignored.
		return query.Where("invoice_num = ?", filter.InvoiceNum)
	}

	if filter.Vendor != "" {
		query = query.Where("vendor_name = ?", filter.Vendor)
	}
	if filter.Currency != "" {
		query = query.Where("currency_code = ?", filter.Currency)
	}
	if filter.InvoiceType != "" {
		query = query.Where("invoice_type = ?", filter.InvoiceType)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(invoice_num) LIKE ? OR LOWER(vendor_name) LIKE ?", pattern, pattern)
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		// ISO date strings compare correctly as strings, bounds inclusive.
		query = query.Where("invoice_date >= ? AND invoice_date <= ?", filter.StartDate, filter.EndDate)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	return query
}

// Create persists a new invoice with its lines.
func (r *invoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(inv)
	result := r.db.WithContext(ctx).Create(invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateInvoiceNum
		}
		return result.Error
	}
	return nil
}

// FindByNum retrieves an invoice with its ordered lines by invoice number.
func (r *invoiceRepository) FindByNum(ctx context.Context, invoiceNum string) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_number ASC")
		}).
		Where("invoice_num = ?", invoiceNum).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices matching the filter with pagination.
// A limit of 0 returns the whole matching set in one page.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter, pagination adapter.InvoicePagination) (*adapter.InvoiceListResult, error) {
	query := applyInvoiceFilter(r.db.WithContext(ctx).Model(&model.InvoiceModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	page := pagination.Page
	if page < 1 {
		page = 1
	}

	fetch := query.
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_number ASC")
		}).
		Order("invoice_date DESC, invoice_num ASC")

	limit := pagination.Limit
	totalPages := 1
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
		if totalPages == 0 {
			totalPages = 1
		}
		fetch = fetch.Offset((page - 1) * limit).Limit(limit)
	}

	var invoiceModels []model.InvoiceModel
	if err := fetch.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}

	return &adapter.InvoiceListResult{
		Invoices:   invoices,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateHeader applies a partial header update plus the recomputed amount.
func (r *invoiceRepository) UpdateHeader(ctx context.Context, invoiceNum string, update adapter.HeaderUpdate, amount decimal.Decimal) error {
	updates := map[string]interface{}{
		"invoice_amount": amount,
		"updated_at":     time.Now().UTC(),
	}
	if update.OrgCode != nil {
		updates["org_code"] = *update.OrgCode
	}
	if update.InvoiceDate != nil {
		updates["invoice_date"] = *update.InvoiceDate
	}
	if update.VendorName != nil {
		updates["vendor_name"] = *update.VendorName
	}
	if update.VendorSiteCode != nil {
		updates["vendor_site_code"] = *update.VendorSiteCode
	}
	if update.CurrencyCode != nil {
		updates["currency_code"] = *update.CurrencyCode
	}
	if update.PaymentTerm != nil {
		updates["payment_term"] = *update.PaymentTerm
	}
	if update.InvoiceType != nil {
		updates["invoice_type"] = string(*update.InvoiceType)
	}
	if update.DocumentLink != nil {
		updates["document_link"] = *update.DocumentLink
	}

	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("invoice_num = ?", invoiceNum).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvoiceNotFound
	}
	return nil
}

// UpdateAmount persists a reconciled header amount keyed by invoice number.
func (r *invoiceRepository) UpdateAmount(ctx context.Context, invoiceNum string, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("invoice_num = ?", invoiceNum).
		Updates(map[string]interface{}{
			"invoice_amount": amount,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvoiceNotFound
	}
	return nil
}

// DistinctVendors returns the sorted distinct vendor names.
func (r *invoiceRepository) DistinctVendors(ctx context.Context) ([]string, error) {
	var vendors []string
	err := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Distinct("vendor_name").
		Order("vendor_name ASC").
		Pluck("vendor_name", &vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}
