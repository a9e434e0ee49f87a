// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/application/usecase/analytics"
	"github.com/invoice-hub/backend/internal/domain/entity"
	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

// analyticsRepository implements the analytics.Repository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.Repository {
	return &analyticsRepository{
		db: db,
	}
}

// GetSummary computes all four aggregates over the same filtered set.
// substr keeps the month grouping portable between PostgreSQL and the
// sqlite driver used in tests.
func (r *analyticsRepository) GetSummary(ctx context.Context, filter adapter.InvoiceFilter) (*entity.InvoiceSummary, error) {
	base := func() *gorm.DB {
		return applyInvoiceFilter(r.db.WithContext(ctx).Model(&model.InvoiceModel{}), filter)
	}

	var totals struct {
		Count  int64           `gorm:"column:count"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	if err := base().
		Select("COUNT(*) as count, COALESCE(SUM(invoice_amount), 0) as amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to compute invoice totals: %w", err)
	}

	var byType []struct {
		InvoiceType string          `gorm:"column:invoice_type"`
		Count       int64           `gorm:"column:count"`
		Amount      decimal.Decimal `gorm:"column:amount"`
	}
	if err := base().
		Select("invoice_type, COUNT(*) as count, COALESCE(SUM(invoice_amount), 0) as amount").
		Group("invoice_type").
		Order("count DESC").
		Scan(&byType).Error; err != nil {
		return nil, fmt.Errorf("failed to compute type breakdown: %w", err)
	}

	var byMonth []struct {
		Month  string          `gorm:"column:month"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}
	if err := base().
		Select("substr(invoice_date, 1, 7) as month, COALESCE(SUM(invoice_amount), 0) as amount").
		Group("substr(invoice_date, 1, 7)").
		Order("month ASC").
		Scan(&byMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	summary := &entity.InvoiceSummary{
		TotalCount:    totals.Count,
		TotalAmount:   totals.Amount,
		TypeBreakdown: make([]entity.TypeBreakdown, len(byType)),
		MonthlyTotals: make([]entity.MonthlyTotal, len(byMonth)),
	}
	for i, row := range byType {
		summary.TypeBreakdown[i] = entity.TypeBreakdown{
			Type:   entity.InvoiceType(row.InvoiceType),
			Count:  row.Count,
			Amount: row.Amount,
		}
	}
	for i, row := range byMonth {
		summary.MonthlyTotals[i] = entity.MonthlyTotal{
			Month:  row.Month,
			Amount: row.Amount,
		}
	}

	return summary, nil
}
