// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/invoice-hub/backend/internal/domain/entity"
	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

// setupTestDB opens a fresh in-memory sqlite database per test. A single
// connection keeps every query on the same in-memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.InvoiceModel{},
		&model.InvoiceLineModel{},
		&model.UserModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

type seedInvoice struct {
	num         string
	vendor      string
	date        string
	currency    string
	invoiceType entity.InvoiceType
	amount      string
	lineAmounts []string
	ownerID     *uuid.UUID
}

func seed(t *testing.T, db *gorm.DB, specs ...seedInvoice) {
	t.Helper()

	for _, s := range specs {
		lines := make([]entity.InvoiceLine, 0, len(s.lineAmounts))
		for i, amount := range s.lineAmounts {
			lines = append(lines, entity.InvoiceLine{
				LineNumber: i + 1,
				LineType:   "Item",
				LineAmount: decimal.RequireFromString(amount),
			})
		}
		currency := s.currency
		if currency == "" {
			currency = "USD"
		}
		inv := entity.NewInvoice(entity.InvoiceHeader{
			OrgCode:      "ORG-1",
			InvoiceNum:   s.num,
			InvoiceDate:  s.date,
			VendorName:   s.vendor,
			CurrencyCode: currency,
			InvoiceType:  s.invoiceType,
		}, lines, s.ownerID, entity.InvoiceSourceImported)
		if s.amount != "" {
			// Deliberately divergent stored amount, used by reconciliation tests.
			inv.Header.InvoiceAmount = decimal.RequireFromString(s.amount)
		}
		if err := db.Create(model.InvoiceFromEntity(inv)).Error; err != nil {
			t.Fatalf("failed to seed invoice %s: %v", s.num, err)
		}
	}
}
