package models

import (
	"time"

	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInvoiceModel is the persistence model for the PurchaseInvoice aggregate
type PurchaseInvoiceModel struct {
	AggregateModel
	Number             string                     `gorm:"type:varchar(20);not null;uniqueIndex:idx_purchase_invoice_key,priority:1"`
	Model              string                     `gorm:"type:varchar(5);not null;uniqueIndex:idx_purchase_invoice_key,priority:2;column:model"`
	Series             string                     `gorm:"type:varchar(5);not null;uniqueIndex:idx_purchase_invoice_key,priority:3"`
	SupplierID         uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_invoice_key,priority:4;index"`
	EmissionDate       time.Time                  `gorm:"not null"`
	EntryDate          *time.Time                 ``
	FreightType        string                     `gorm:"type:varchar(5);not null"`
	Situation          string                     `gorm:"type:varchar(10);not null;default:'NORMAL';index"`
	FreightAmount      decimal.Decimal            `gorm:"type:decimal(18,4);not null"`
	InsuranceAmount    decimal.Decimal            `gorm:"type:decimal(18,4);not null"`
	OtherExpenses      decimal.Decimal            `gorm:"type:decimal(18,4);not null"`
	DiscountAmount     decimal.Decimal            `gorm:"type:decimal(18,4);not null"`
	PaymentConditionID *uuid.UUID                 `gorm:"type:uuid"`
	Remark             string                     `gorm:"type:text"`
	CancelledAt        *time.Time                 ``
	Lines              []PurchaseInvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseInvoiceModel) TableName() string {
	return "purchase_invoices"
}

// PurchaseInvoiceLineModel is the persistence model for purchase invoice lines
type PurchaseInvoiceLineModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sequence       int             `gorm:"not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FreightShare   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	InsuranceShare decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherShare     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LandedCost     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseInvoiceLineModel) TableName() string {
	return "purchase_invoice_lines"
}

// ToDomain converts the persistence model to a domain PurchaseInvoice
func (m *PurchaseInvoiceModel) ToDomain() *trade.PurchaseInvoice {
	lines := make([]trade.InvoiceLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, trade.InvoiceLine{
			ID:             l.ID,
			ProductID:      l.ProductID,
			Sequence:       l.Sequence,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			LineTotal:      l.LineTotal,
			FreightShare:   l.FreightShare,
			InsuranceShare: l.InsuranceShare,
			OtherShare:     l.OtherShare,
			LandedCost:     l.LandedCost,
		})
	}
	return &trade.PurchaseInvoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Key: trade.InvoiceKey{
			Number:  m.Number,
			Model:   m.Model,
			Series:  m.Series,
			PartyID: m.SupplierID,
		},
		EmissionDate:       m.EmissionDate,
		EntryDate:          m.EntryDate,
		FreightType:        trade.FreightType(m.FreightType),
		Situation:          trade.InvoiceSituation(m.Situation),
		FreightAmount:      m.FreightAmount,
		InsuranceAmount:    m.InsuranceAmount,
		OtherExpenses:      m.OtherExpenses,
		DiscountAmount:     m.DiscountAmount,
		PaymentConditionID: m.PaymentConditionID,
		Lines:              lines,
		Remark:             m.Remark,
		CancelledAt:        m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain PurchaseInvoice
func (m *PurchaseInvoiceModel) FromDomain(inv *trade.PurchaseInvoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Number = inv.Key.Number
	m.Model = inv.Key.Model
	m.Series = inv.Key.Series
	m.SupplierID = inv.Key.PartyID
	m.EmissionDate = inv.EmissionDate
	m.EntryDate = inv.EntryDate
	m.FreightType = inv.FreightType.String()
	m.Situation = inv.Situation.String()
	m.FreightAmount = inv.FreightAmount
	m.InsuranceAmount = inv.InsuranceAmount
	m.OtherExpenses = inv.OtherExpenses
	m.DiscountAmount = inv.DiscountAmount
	m.PaymentConditionID = inv.PaymentConditionID
	m.Remark = inv.Remark
	m.CancelledAt = inv.CancelledAt

	m.Lines = make([]PurchaseInvoiceLineModel, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		m.Lines = append(m.Lines, PurchaseInvoiceLineModel{
			ID:             l.ID,
			InvoiceID:      inv.ID,
			ProductID:      l.ProductID,
			Sequence:       l.Sequence,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			LineTotal:      l.LineTotal,
			FreightShare:   l.FreightShare,
			InsuranceShare: l.InsuranceShare,
			OtherShare:     l.OtherShare,
			LandedCost:     l.LandedCost,
		})
	}
}

// SalesInvoiceModel is the persistence model for the SalesInvoice aggregate
type SalesInvoiceModel struct {
	AggregateModel
	Number             string                  `gorm:"type:varchar(20);not null;uniqueIndex:idx_sales_invoice_key,priority:1"`
	Model              string                  `gorm:"type:varchar(5);not null;uniqueIndex:idx_sales_invoice_key,priority:2;column:model"`
	Series             string                  `gorm:"type:varchar(5);not null;uniqueIndex:idx_sales_invoice_key,priority:3"`
	CustomerID         uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_sales_invoice_key,priority:4;index"`
	EmissionDate       time.Time               `gorm:"not null"`
	DepartureDate      *time.Time              ``
	FreightType        string                  `gorm:"type:varchar(5);not null"`
	Situation          string                  `gorm:"type:varchar(10);not null;default:'NORMAL';index"`
	FreightAmount      decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	InsuranceAmount    decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	OtherExpenses      decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	DiscountAmount     decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	PaymentConditionID *uuid.UUID              `gorm:"type:uuid"`
	Remark             string                  `gorm:"type:text"`
	CancelledAt        *time.Time              ``
	Lines              []SalesInvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SalesInvoiceModel) TableName() string {
	return "sales_invoices"
}

// SalesInvoiceLineModel is the persistence model for sales invoice lines
type SalesInvoiceLineModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sequence       int             `gorm:"not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FreightShare   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	InsuranceShare decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherShare     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LandedCost     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SalesInvoiceLineModel) TableName() string {
	return "sales_invoice_lines"
}

// ToDomain converts the persistence model to a domain SalesInvoice
func (m *SalesInvoiceModel) ToDomain() *trade.SalesInvoice {
	lines := make([]trade.InvoiceLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, trade.InvoiceLine{
			ID:             l.ID,
			ProductID:      l.ProductID,
			Sequence:       l.Sequence,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			LineTotal:      l.LineTotal,
			FreightShare:   l.FreightShare,
			InsuranceShare: l.InsuranceShare,
			OtherShare:     l.OtherShare,
			LandedCost:     l.LandedCost,
		})
	}
	return &trade.SalesInvoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Key: trade.InvoiceKey{
			Number:  m.Number,
			Model:   m.Model,
			Series:  m.Series,
			PartyID: m.CustomerID,
		},
		EmissionDate:       m.EmissionDate,
		DepartureDate:      m.DepartureDate,
		FreightType:        trade.FreightType(m.FreightType),
		Situation:          trade.InvoiceSituation(m.Situation),
		FreightAmount:      m.FreightAmount,
		InsuranceAmount:    m.InsuranceAmount,
		OtherExpenses:      m.OtherExpenses,
		DiscountAmount:     m.DiscountAmount,
		PaymentConditionID: m.PaymentConditionID,
		Lines:              lines,
		Remark:             m.Remark,
		CancelledAt:        m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain SalesInvoice
func (m *SalesInvoiceModel) FromDomain(inv *trade.SalesInvoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Number = inv.Key.Number
	m.Model = inv.Key.Model
	m.Series = inv.Key.Series
	m.CustomerID = inv.Key.PartyID
	m.EmissionDate = inv.EmissionDate
	m.DepartureDate = inv.DepartureDate
	m.FreightType = inv.FreightType.String()
	m.Situation = inv.Situation.String()
	m.FreightAmount = inv.FreightAmount
	m.InsuranceAmount = inv.InsuranceAmount
	m.OtherExpenses = inv.OtherExpenses
	m.DiscountAmount = inv.DiscountAmount
	m.PaymentConditionID = inv.PaymentConditionID
	m.Remark = inv.Remark
	m.CancelledAt = inv.CancelledAt

	m.Lines = make([]SalesInvoiceLineModel, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		m.Lines = append(m.Lines, SalesInvoiceLineModel{
			ID:             l.ID,
			InvoiceID:      inv.ID,
			ProductID:      l.ProductID,
			Sequence:       l.Sequence,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			LineTotal:      l.LineTotal,
			FreightShare:   l.FreightShare,
			InsuranceShare: l.InsuranceShare,
			OtherShare:     l.OtherShare,
			LandedCost:     l.LandedCost,
		})
	}
}
