package billing

import (
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentCreatedEvent is raised when a new installment is generated
type InstallmentCreatedEvent struct {
	shared.BaseDomainEvent
	InstallmentID uuid.UUID        `json:"installment_id"`
	Kind          InstallmentKind  `json:"kind"`
	InvoiceKey    trade.InvoiceKey `json:"invoice_key"`
	Number        int              `json:"number"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       time.Time        `json:"due_date"`
}

// EventType returns the event type name
func (e *InstallmentCreatedEvent) EventType() string {
	return "InstallmentCreated"
}

// NewInstallmentCreatedEvent creates a new InstallmentCreatedEvent
func NewInstallmentCreatedEvent(i *Installment) *InstallmentCreatedEvent {
	return &InstallmentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentCreated", "Installment", i.ID),
		InstallmentID:   i.ID,
		Kind:            i.Kind,
		InvoiceKey:      i.InvoiceKey,
		Number:          i.Number,
		Amount:          i.OriginalAmount,
		DueDate:         i.DueDate,
	}
}

// InstallmentSettledEvent is raised when an installment is fully settled
type InstallmentSettledEvent struct {
	shared.BaseDomainEvent
	InstallmentID uuid.UUID       `json:"installment_id"`
	Kind          InstallmentKind `json:"kind"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Interest      decimal.Decimal `json:"interest"`
	Penalty       decimal.Decimal `json:"penalty"`
	PaymentDate   time.Time       `json:"payment_date"`
}

// EventType returns the event type name
func (e *InstallmentSettledEvent) EventType() string {
	return "InstallmentSettled"
}

// NewInstallmentSettledEvent creates a new InstallmentSettledEvent
func NewInstallmentSettledEvent(i *Installment) *InstallmentSettledEvent {
	paymentDate := time.Now()
	if i.PaymentDate != nil {
		paymentDate = *i.PaymentDate
	}
	return &InstallmentSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentSettled", "Installment", i.ID),
		InstallmentID:   i.ID,
		Kind:            i.Kind,
		PaidAmount:      i.PaidAmount,
		Interest:        i.Interest,
		Penalty:         i.Penalty,
		PaymentDate:     paymentDate,
	}
}

// InstallmentPartiallySettledEvent is raised when a payment leaves a balance
type InstallmentPartiallySettledEvent struct {
	shared.BaseDomainEvent
	InstallmentID uuid.UUID       `json:"installment_id"`
	Kind          InstallmentKind `json:"kind"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// EventType returns the event type name
func (e *InstallmentPartiallySettledEvent) EventType() string {
	return "InstallmentPartiallySettled"
}

// NewInstallmentPartiallySettledEvent creates a new InstallmentPartiallySettledEvent
func NewInstallmentPartiallySettledEvent(i *Installment, paymentAmount decimal.Decimal) *InstallmentPartiallySettledEvent {
	return &InstallmentPartiallySettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentPartiallySettled", "Installment", i.ID),
		InstallmentID:   i.ID,
		Kind:            i.Kind,
		PaymentAmount:   paymentAmount,
		Outstanding:     i.OutstandingAmount(),
	}
}

// InstallmentCancelledEvent is raised when an installment is cancelled
type InstallmentCancelledEvent struct {
	shared.BaseDomainEvent
	InstallmentID uuid.UUID        `json:"installment_id"`
	Kind          InstallmentKind  `json:"kind"`
	InvoiceKey    trade.InvoiceKey `json:"invoice_key"`
	Number        int              `json:"number"`
}

// EventType returns the event type name
func (e *InstallmentCancelledEvent) EventType() string {
	return "InstallmentCancelled"
}

// NewInstallmentCancelledEvent creates a new InstallmentCancelledEvent
func NewInstallmentCancelledEvent(i *Installment) *InstallmentCancelledEvent {
	return &InstallmentCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentCancelled", "Installment", i.ID),
		InstallmentID:   i.ID,
		Kind:            i.Kind,
		InvoiceKey:      i.InvoiceKey,
		Number:          i.Number,
	}
}
