package trade

import (
	"fmt"
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseInvoice represents an incoming invoice received from a supplier.
// It is identified by its composite natural key (number, model, series,
// supplier); the surrogate ID exists for persistence and cross-references.
type PurchaseInvoice struct {
	shared.BaseAggregateRoot
	Key                InvoiceKey       `json:"key"` // PartyID is the supplier
	EmissionDate       time.Time        `json:"emission_date"`
	EntryDate          *time.Time       `json:"entry_date,omitempty"` // When goods arrived
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

// NewPurchaseInvoice creates a new purchase invoice without lines.
// Lines are added through AddLine, which assigns sequence numbers.
func NewPurchaseInvoice(
	key InvoiceKey,
	emissionDate time.Time,
	freightType FreightType,
	freight, insurance, other, discount decimal.Decimal,
	paymentConditionID *uuid.UUID,
) (*PurchaseInvoice, error) {
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

	inv := &PurchaseInvoice{
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

	inv.AddDomainEvent(NewPurchaseInvoiceRegisteredEvent(inv))

	return inv, nil
}

// AddLine appends a line to the invoice, assigning the next sequence number
func (inv *PurchaseInvoice) AddLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
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
func (inv *PurchaseInvoice) ProductsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range inv.Lines {
		total = total.Add(l.LineTotal)
	}
	return total
}

// TotalAmount returns the overall invoice total:
// products + freight + insurance + other expenses - discount
func (inv *PurchaseInvoice) TotalAmount() decimal.Decimal {
	return inv.ProductsTotal().
		Add(inv.FreightAmount).
		Add(inv.InsuranceAmount).
		Add(inv.OtherExpenses).
		Sub(inv.DiscountAmount)
}

// Validate checks the invoice invariants before persistence
func (inv *PurchaseInvoice) Validate() error {
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

// SetEntryDate records when the goods arrived
func (inv *PurchaseInvoice) SetEntryDate(entryDate time.Time) {
	inv.EntryDate = &entryDate
	inv.UpdatedAt = time.Now()
}

// Cancel marks the invoice as cancelled
func (inv *PurchaseInvoice) Cancel() error {
	if inv.IsCancelled() {
		return shared.NewDomainError("ALREADY_CANCELLED", "Invoice is already cancelled")
	}

	now := time.Now()
	inv.Situation = InvoiceSituationCancelled
	inv.CancelledAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	inv.AddDomainEvent(NewPurchaseInvoiceCancelledEvent(inv))

	return nil
}

// IsCancelled returns true if the invoice is cancelled
func (inv *PurchaseInvoice) IsCancelled() bool {
	return inv.Situation == InvoiceSituationCancelled
}

// SupplierID returns the counterparty of the invoice
func (inv *PurchaseInvoice) SupplierID() uuid.UUID {
	return inv.Key.PartyID
}
