package models

import (
	"time"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentModel is the persistence model for the Installment aggregate.
// The invoice's natural key is denormalized onto each row so a whole batch
// can be replaced without joining back to the invoice tables.
type InstallmentModel struct {
	AggregateModel
	Kind              string          `gorm:"type:varchar(12);not null;uniqueIndex:idx_installment_key,priority:1;index:idx_installment_status,priority:1"`
	InvoiceNumber     string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_installment_key,priority:2"`
	InvoiceModel      string          `gorm:"type:varchar(5);not null;uniqueIndex:idx_installment_key,priority:3"`
	InvoiceSeries     string          `gorm:"type:varchar(5);not null;uniqueIndex:idx_installment_key,priority:4"`
	PartyID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_installment_key,priority:5;index"`
	Number            int             `gorm:"not null;uniqueIndex:idx_installment_key,priority:6"`
	TotalInstallments int             `gorm:"not null"`
	OriginalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAmount        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Interest          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Penalty           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalDue          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EmissionDate      time.Time       `gorm:"not null"`
	DueDate           time.Time       `gorm:"not null;index"`
	PaymentDate       *time.Time      ``
	PaymentMethodID   *uuid.UUID      `gorm:"type:uuid"`
	Status            string          `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_installment_status,priority:2"`
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment
func (m *InstallmentModel) ToDomain() *billing.Installment {
	return &billing.Installment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Kind:              billing.InstallmentKind(m.Kind),
		InvoiceKey: trade.InvoiceKey{
			Number:  m.InvoiceNumber,
			Model:   m.InvoiceModel,
			Series:  m.InvoiceSeries,
			PartyID: m.PartyID,
		},
		Number:            m.Number,
		TotalInstallments: m.TotalInstallments,
		OriginalAmount:    m.OriginalAmount,
		PaidAmount:        m.PaidAmount,
		Discount:          m.Discount,
		Interest:          m.Interest,
		Penalty:           m.Penalty,
		TotalDue:          m.TotalDue,
		EmissionDate:      m.EmissionDate,
		DueDate:           m.DueDate,
		PaymentDate:       m.PaymentDate,
		PaymentMethodID:   m.PaymentMethodID,
		Status:            billing.InstallmentStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Installment
func (m *InstallmentModel) FromDomain(inst *billing.Installment) {
	m.FromDomainAggregateRoot(inst.BaseAggregateRoot)
	m.Kind = inst.Kind.String()
	m.InvoiceNumber = inst.InvoiceKey.Number
	m.InvoiceModel = inst.InvoiceKey.Model
	m.InvoiceSeries = inst.InvoiceKey.Series
	m.PartyID = inst.InvoiceKey.PartyID
	m.Number = inst.Number
	m.TotalInstallments = inst.TotalInstallments
	m.OriginalAmount = inst.OriginalAmount
	m.PaidAmount = inst.PaidAmount
	m.Discount = inst.Discount
	m.Interest = inst.Interest
	m.Penalty = inst.Penalty
	m.TotalDue = inst.TotalDue
	m.EmissionDate = inst.EmissionDate
	m.DueDate = inst.DueDate
	m.PaymentDate = inst.PaymentDate
	m.PaymentMethodID = inst.PaymentMethodID
	m.Status = inst.Status.String()
}

// PaymentConditionModel is the persistence model for the PaymentCondition aggregate
type PaymentConditionModel struct {
	AggregateModel
	Name        string                       `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string                       `gorm:"type:text"`
	Active      bool                         `gorm:"not null;default:true"`
	Entries     []PaymentConditionEntryModel `gorm:"foreignKey:ConditionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PaymentConditionModel) TableName() string {
	return "payment_conditions"
}

// PaymentConditionEntryModel is one installment slot of a condition template
type PaymentConditionEntryModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	ConditionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number          int             `gorm:"not null"`
	OffsetDays      int             `gorm:"not null"`
	Percentage      decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	PaymentMethodID *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentConditionEntryModel) TableName() string {
	return "payment_condition_entries"
}

// ToDomain converts the persistence model to a domain PaymentCondition
func (m *PaymentConditionModel) ToDomain() *billing.PaymentCondition {
	entries := make([]billing.PaymentConditionEntry, 0, len(m.Entries))
	for _, e := range m.Entries {
		entries = append(entries, billing.PaymentConditionEntry{
			Number:          e.Number,
			OffsetDays:      e.OffsetDays,
			Percentage:      e.Percentage,
			PaymentMethodID: e.PaymentMethodID,
		})
	}
	return &billing.PaymentCondition{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Active:            m.Active,
		Entries:           entries,
	}
}

// FromDomain populates the persistence model from a domain PaymentCondition
func (m *PaymentConditionModel) FromDomain(pc *billing.PaymentCondition) {
	m.FromDomainAggregateRoot(pc.BaseAggregateRoot)
	m.Name = pc.Name
	m.Description = pc.Description
	m.Active = pc.Active

	m.Entries = make([]PaymentConditionEntryModel, 0, len(pc.Entries))
	for _, e := range pc.Entries {
		m.Entries = append(m.Entries, PaymentConditionEntryModel{
			ID:              uuid.New(),
			ConditionID:     pc.ID,
			Number:          e.Number,
			OffsetDays:      e.OffsetDays,
			Percentage:      e.Percentage,
			PaymentMethodID: e.PaymentMethodID,
		})
	}
}

// PaymentMethodModel is the persistence model for the PaymentMethod aggregate
type PaymentMethodModel struct {
	AggregateModel
	Name   string `gorm:"type:varchar(60);not null;uniqueIndex"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts the persistence model to a domain PaymentMethod
func (m *PaymentMethodModel) ToDomain() *billing.PaymentMethod {
	return &billing.PaymentMethod{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain PaymentMethod
func (m *PaymentMethodModel) FromDomain(pm *billing.PaymentMethod) {
	m.FromDomainAggregateRoot(pm.BaseAggregateRoot)
	m.Name = pm.Name
	m.Active = pm.Active
}

// StandaloneChargeModel is the persistence model for the StandaloneCharge aggregate
type StandaloneChargeModel struct {
	AggregateModel
	Description         string          `gorm:"type:varchar(255);not null"`
	SupplierID          *uuid.UUID      `gorm:"type:uuid;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Interest            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Penalty             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalDue            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	MonthlyInterestRate decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	PenaltyRate         decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	EmissionDate        time.Time       `gorm:"not null"`
	DueDate             time.Time       `gorm:"not null;index"`
	PaymentDate         *time.Time      ``
	PaymentMethodID     *uuid.UUID      `gorm:"type:uuid"`
	Status              string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (StandaloneChargeModel) TableName() string {
	return "standalone_charges"
}

// ToDomain converts the persistence model to a domain StandaloneCharge
func (m *StandaloneChargeModel) ToDomain() *billing.StandaloneCharge {
	return &billing.StandaloneCharge{
		BaseAggregateRoot:   m.ToDomainAggregateRoot(),
		Description:         m.Description,
		SupplierID:          m.SupplierID,
		Amount:              m.Amount,
		PaidAmount:          m.PaidAmount,
		Discount:            m.Discount,
		Interest:            m.Interest,
		Penalty:             m.Penalty,
		TotalDue:            m.TotalDue,
		MonthlyInterestRate: m.MonthlyInterestRate,
		PenaltyRate:         m.PenaltyRate,
		EmissionDate:        m.EmissionDate,
		DueDate:             m.DueDate,
		PaymentDate:         m.PaymentDate,
		PaymentMethodID:     m.PaymentMethodID,
		Status:              billing.ChargeStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain StandaloneCharge
func (m *StandaloneChargeModel) FromDomain(c *billing.StandaloneCharge) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Description = c.Description
	m.SupplierID = c.SupplierID
	m.Amount = c.Amount
	m.PaidAmount = c.PaidAmount
	m.Discount = c.Discount
	m.Interest = c.Interest
	m.Penalty = c.Penalty
	m.TotalDue = c.TotalDue
	m.MonthlyInterestRate = c.MonthlyInterestRate
	m.PenaltyRate = c.PenaltyRate
	m.EmissionDate = c.EmissionDate
	m.DueDate = c.DueDate
	m.PaymentDate = c.PaymentDate
	m.PaymentMethodID = c.PaymentMethodID
	m.Status = c.Status.String()
}
