package trade

import (
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInvoiceRegisteredEvent is raised when a purchase invoice is created
type PurchaseInvoiceRegisteredEvent struct {
	shared.BaseDomainEvent
	InvoiceID    uuid.UUID       `json:"invoice_id"`
	Key          InvoiceKey      `json:"key"`
	EmissionDate time.Time       `json:"emission_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// EventType returns the event type name
func (e *PurchaseInvoiceRegisteredEvent) EventType() string {
	return "PurchaseInvoiceRegistered"
}

// NewPurchaseInvoiceRegisteredEvent creates a new PurchaseInvoiceRegisteredEvent
func NewPurchaseInvoiceRegisteredEvent(inv *PurchaseInvoice) *PurchaseInvoiceRegisteredEvent {
	return &PurchaseInvoiceRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("PurchaseInvoiceRegistered", "PurchaseInvoice", inv.ID),
		InvoiceID:       inv.ID,
		Key:             inv.Key,
		EmissionDate:    inv.EmissionDate,
		TotalAmount:     inv.TotalAmount(),
	}
}

// PurchaseInvoiceCancelledEvent is raised when a purchase invoice is cancelled
type PurchaseInvoiceCancelledEvent struct {
	shared.BaseDomainEvent
	InvoiceID   uuid.UUID  `json:"invoice_id"`
	Key         InvoiceKey `json:"key"`
	CancelledAt time.Time  `json:"cancelled_at"`
}

// EventType returns the event type name
func (e *PurchaseInvoiceCancelledEvent) EventType() string {
	return "PurchaseInvoiceCancelled"
}

// NewPurchaseInvoiceCancelledEvent creates a new PurchaseInvoiceCancelledEvent
func NewPurchaseInvoiceCancelledEvent(inv *PurchaseInvoice) *PurchaseInvoiceCancelledEvent {
	cancelledAt := time.Now()
	if inv.CancelledAt != nil {
		cancelledAt = *inv.CancelledAt
	}
	return &PurchaseInvoiceCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("PurchaseInvoiceCancelled", "PurchaseInvoice", inv.ID),
		InvoiceID:       inv.ID,
		Key:             inv.Key,
		CancelledAt:     cancelledAt,
	}
}

// SalesInvoiceRegisteredEvent is raised when a sales invoice is created
type SalesInvoiceRegisteredEvent struct {
	shared.BaseDomainEvent
	InvoiceID    uuid.UUID       `json:"invoice_id"`
	Key          InvoiceKey      `json:"key"`
	EmissionDate time.Time       `json:"emission_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// EventType returns the event type name
func (e *SalesInvoiceRegisteredEvent) EventType() string {
	return "SalesInvoiceRegistered"
}

// NewSalesInvoiceRegisteredEvent creates a new SalesInvoiceRegisteredEvent
func NewSalesInvoiceRegisteredEvent(inv *SalesInvoice) *SalesInvoiceRegisteredEvent {
	return &SalesInvoiceRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SalesInvoiceRegistered", "SalesInvoice", inv.ID),
		InvoiceID:       inv.ID,
		Key:             inv.Key,
		EmissionDate:    inv.EmissionDate,
		TotalAmount:     inv.TotalAmount(),
	}
}

// SalesInvoiceCancelledEvent is raised when a sales invoice is cancelled
type SalesInvoiceCancelledEvent struct {
	shared.BaseDomainEvent
	InvoiceID   uuid.UUID  `json:"invoice_id"`
	Key         InvoiceKey `json:"key"`
	CancelledAt time.Time  `json:"cancelled_at"`
}

// EventType returns the event type name
func (e *SalesInvoiceCancelledEvent) EventType() string {
	return "SalesInvoiceCancelled"
}

// NewSalesInvoiceCancelledEvent creates a new SalesInvoiceCancelledEvent
func NewSalesInvoiceCancelledEvent(inv *SalesInvoice) *SalesInvoiceCancelledEvent {
	cancelledAt := time.Now()
	if inv.CancelledAt != nil {
		cancelledAt = *inv.CancelledAt
	}
	return &SalesInvoiceCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SalesInvoiceCancelled", "SalesInvoice", inv.ID),
		InvoiceID:       inv.ID,
		Key:             inv.Key,
		CancelledAt:     cancelledAt,
	}
}
