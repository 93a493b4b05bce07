package trade

import (
	"fmt"
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesInvoice represents an outgoing invoice issued to a customer.
// Like PurchaseInvoice it is identified by its composite natural key
// (number, model, series, customer).
type SalesInvoice struct {
	shared.BaseAggregateRoot
	Key                InvoiceKey       `json:"key"` // PartyID is the customer
	EmissionDate       time.Time        `json:"emission_date"`
	DepartureDate      *time.Time       `json:"departure_date,omitempty"` // When goods left
	FreightType        FreightType      `json:"freight_type"`
	Situation          InvoiceSituation `json:"situation"`
	FreightAmount      decimal.Decimal  `json:"freight_amount"`
	InsuranceAmount    decimal.Decimal  `json:"insurance_amount"`
	OtherExpenses      decimal.Decimal  `json:"other_expenses"`
	DiscountAmount     decimal.Decimal  `json:"discount_amount"`
	PaymentConditionID *uuid.UUID       `json:"payment_condition_id,omitempty"`
	Lines              []InvoiceLine    `json:"lines"`
	Remark             string           `json:"remark"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
}

// NewSalesInvoice creates a new sales invoice without lines
func NewSalesInvoice(
	key InvoiceKey,
	emissionDate time.Time,
	freightType FreightType,
	freight, insurance, other, discount decimal.Decimal,
	paymentConditionID *uuid.UUID,
) (*SalesInvoice, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if emissionDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_EMISSION_DATE", "Emission date is required")
	}
	if !freightType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREIGHT_TYPE", fmt.Sprintf("Freight type %q is not valid", freightType))
	}
	if freight.IsNegative() || insurance.IsNegative() || other.IsNegative() || discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice cost amounts cannot be negative")
	}

	inv := &SalesInvoice{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Key:                key,
		EmissionDate:       emissionDate,
		FreightType:        freightType,
		Situation:          InvoiceSituationNormal,
		FreightAmount:      freight,
		InsuranceAmount:    insurance,
		OtherExpenses:      other,
		DiscountAmount:     discount,
		PaymentConditionID: paymentConditionID,
		Lines:              make([]InvoiceLine, 0),
	}

	inv.AddDomainEvent(NewSalesInvoiceRegisteredEvent(inv))

	return inv, nil
}

// AddLine appends a line to the invoice, assigning the next sequence number
func (inv *SalesInvoice) AddLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if inv.IsCancelled() {
		return shared.NewDomainError("INVALID_STATE", "Cannot add lines to a cancelled invoice")
	}

	line, err := NewInvoiceLine(productID, quantity, unitPrice)
	if err != nil {
		return err
	}
	line.Sequence = len(inv.Lines) + 1
	inv.Lines = append(inv.Lines, line)
	inv.UpdatedAt = time.Now()
	return nil
}

// ProductsTotal returns the sum of all line totals
func (inv *SalesInvoice) ProductsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range inv.Lines {
		total = total.Add(l.LineTotal)
	}
	return total
}

// TotalAmount returns the overall invoice total:
// products + freight + insurance + other expenses - discount
func (inv *SalesInvoice) TotalAmount() decimal.Decimal {
	return inv.ProductsTotal().
		Add(inv.FreightAmount).
		Add(inv.InsuranceAmount).
		Add(inv.OtherExpenses).
		Sub(inv.DiscountAmount)
}

// Validate checks the invoice invariants before persistence
func (inv *SalesInvoice) Validate() error {
	if err := inv.Key.Validate(); err != nil {
		return err
	}
	if len(inv.Lines) == 0 {
		return shared.NewDomainError("EMPTY_INVOICE", "Invoice must have at least one line item")
	}
	if !inv.Situation.IsValid() {
		return shared.NewDomainError("INVALID_SITUATION", fmt.Sprintf("Situation %q is not valid", inv.Situation))
	}
	return nil
}

// SetDepartureDate records when the goods left
func (inv *SalesInvoice) SetDepartureDate(departureDate time.Time) {
	inv.DepartureDate = &departureDate
	inv.UpdatedAt = time.Now()
}

// Cancel marks the invoice as cancelled
func (inv *SalesInvoice) Cancel() error {
	if inv.IsCancelled() {
		return shared.NewDomainError("ALREADY_CANCELLED", "Invoice is already cancelled")
	}

	now := time.Now()
	inv.Situation = InvoiceSituationCancelled
	inv.CancelledAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	inv.AddDomainEvent(NewSalesInvoiceCancelledEvent(inv))

	return nil
}

// IsCancelled returns true if the invoice is cancelled
func (inv *SalesInvoice) IsCancelled() bool {
	return inv.Situation == InvoiceSituationCancelled
}

// CustomerID returns the counterparty of the invoice
func (inv *SalesInvoice) CustomerID() uuid.UUID {
	return inv.Key.PartyID
}
