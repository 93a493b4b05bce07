package billing

import (
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeCreatedEvent is raised when a new standalone charge is entered
type ChargeCreatedEvent struct {
	shared.BaseDomainEvent
	ChargeID    uuid.UUID       `json:"charge_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
}

// EventType returns the event type name
func (e *ChargeCreatedEvent) EventType() string {
	return "StandaloneChargeCreated"
}

// NewChargeCreatedEvent creates a new ChargeCreatedEvent
func NewChargeCreatedEvent(c *StandaloneCharge) *ChargeCreatedEvent {
	return &ChargeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("StandaloneChargeCreated", "StandaloneCharge", c.ID),
		ChargeID:        c.ID,
		Description:     c.Description,
		Amount:          c.Amount,
		DueDate:         c.DueDate,
	}
}

// ChargePaidEvent is raised when a charge is fully paid
type ChargePaidEvent struct {
	shared.BaseDomainEvent
	ChargeID   uuid.UUID       `json:"charge_id"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Interest   decimal.Decimal `json:"interest"`
	Penalty    decimal.Decimal `json:"penalty"`
}

// EventType returns the event type name
func (e *ChargePaidEvent) EventType() string {
	return "StandaloneChargePaid"
}

// NewChargePaidEvent creates a new ChargePaidEvent
func NewChargePaidEvent(c *StandaloneCharge) *ChargePaidEvent {
	return &ChargePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("StandaloneChargePaid", "StandaloneCharge", c.ID),
		ChargeID:        c.ID,
		PaidAmount:      c.PaidAmount,
		Interest:        c.Interest,
		Penalty:         c.Penalty,
	}
}

// ChargePartiallyPaidEvent is raised when a payment leaves a balance
type ChargePartiallyPaidEvent struct {
	shared.BaseDomainEvent
	ChargeID      uuid.UUID       `json:"charge_id"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// EventType returns the event type name
func (e *ChargePartiallyPaidEvent) EventType() string {
	return "StandaloneChargePartiallyPaid"
}

// NewChargePartiallyPaidEvent creates a new ChargePartiallyPaidEvent
func NewChargePartiallyPaidEvent(c *StandaloneCharge, paymentAmount decimal.Decimal) *ChargePartiallyPaidEvent {
	return &ChargePartiallyPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("StandaloneChargePartiallyPaid", "StandaloneCharge", c.ID),
		ChargeID:        c.ID,
		PaymentAmount:   paymentAmount,
	}
}

// ChargeCancelledEvent is raised when a charge is cancelled
type ChargeCancelledEvent struct {
	shared.BaseDomainEvent
	ChargeID uuid.UUID `json:"charge_id"`
}

// EventType returns the event type name
func (e *ChargeCancelledEvent) EventType() string {
	return "StandaloneChargeCancelled"
}

// NewChargeCancelledEvent creates a new ChargeCancelledEvent
func NewChargeCancelledEvent(c *StandaloneCharge) *ChargeCancelledEvent {
	return &ChargeCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("StandaloneChargeCancelled", "StandaloneCharge", c.ID),
		ChargeID:        c.ID,
	}
}
