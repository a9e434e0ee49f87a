// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
// InvoiceDate is stored as an ISO date string so the inclusive range filter
// and YYYY-MM month grouping are plain string operations.
type InvoiceModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrgCode         string          `gorm:"type:varchar(30)"`
	InvoiceNum      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate     string          `gorm:"type:varchar(10);not null;index"`
	VendorName      string          `gorm:"type:varchar(255);not null;index"`
	VendorSiteCode  string          `gorm:"type:varchar(30)"`
	InvoiceAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrencyCode    string          `gorm:"type:varchar(3);index"`
	PaymentTerm     string          `gorm:"type:varchar(20)"`
	InvoiceType     string          `gorm:"type:varchar(20);index"`
	DocumentLink    string          `gorm:"type:text"`
	OwnerID         *uuid.UUID      `gorm:"type:uuid;index"`
	Source          string          `gorm:"type:varchar(20)"`
	OriginMessageID string          `gorm:"type:varchar(100)"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Lines []InvoiceLineModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceLineModel represents the invoice_lines table in the database.
type InvoiceLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNumber  int             `gorm:"not null"`
	LineType    string          `gorm:"type:varchar(20)"`
	Description string          `gorm:"type:varchar(255)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,3)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,4)"`
	LineAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the InvoiceLineModel.
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToEntity converts an InvoiceModel with its lines to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	lines := make([]entity.InvoiceLine, len(m.Lines))
	for i, lm := range m.Lines {
		lines[i] = entity.InvoiceLine{
			LineNumber:  lm.LineNumber,
			LineType:    lm.LineType,
			Description: lm.Description,
			Quantity:    lm.Quantity,
			UnitPrice:   lm.UnitPrice,
			LineAmount:  lm.LineAmount,
		}
	}

	return &entity.Invoice{
		ID: m.ID,
		Header: entity.InvoiceHeader{
			OrgCode:        m.OrgCode,
			InvoiceNum:     m.InvoiceNum,
			InvoiceDate:    m.InvoiceDate,
			VendorName:     m.VendorName,
			VendorSiteCode: m.VendorSiteCode,
			InvoiceAmount:  m.InvoiceAmount,
			CurrencyCode:   m.CurrencyCode,
			PaymentTerm:    m.PaymentTerm,
			InvoiceType:    entity.InvoiceType(m.InvoiceType),
			DocumentLink:   m.DocumentLink,
		},
		Lines:           lines,
		OwnerID:         m.OwnerID,
		Source:          entity.InvoiceSource(m.Source),
		OriginMessageID: m.OriginMessageID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel with its lines from a domain Invoice entity.
func InvoiceFromEntity(inv *entity.Invoice) *InvoiceModel {
	lines := make([]InvoiceLineModel, len(inv.Lines))
	for i, line := range inv.Lines {
		lines[i] = InvoiceLineModel{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			LineNumber:  line.LineNumber,
			LineType:    line.LineType,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineAmount:  line.LineAmount,
		}
	}

	return &InvoiceModel{
		ID:              inv.ID,
		OrgCode:         inv.Header.OrgCode,
		InvoiceNum:      inv.Header.InvoiceNum,
		InvoiceDate:     inv.Header.InvoiceDate,
		VendorName:      inv.Header.VendorName,
		VendorSiteCode:  inv.Header.VendorSiteCode,
		InvoiceAmount:   inv.Header.InvoiceAmount,
		CurrencyCode:    inv.Header.CurrencyCode,
		PaymentTerm:     inv.Header.PaymentTerm,
		InvoiceType:     string(inv.Header.InvoiceType),
		DocumentLink:    inv.Header.DocumentLink,
		OwnerID:         inv.OwnerID,
		Source:          string(inv.Source),
		OriginMessageID: inv.OriginMessageID,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
		Lines:           lines,
	}
}
