package trade

import (
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLine is a single priced item of an invoice. Lines are exclusively
// owned by their invoice; they never exist on their own.
//
// The freight/insurance/other share fields are populated by cost proration
// after the invoice is assembled; LandedCost is the line total plus all
// three shares.
type InvoiceLine struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Sequence       int             `json:"sequence"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	FreightShare   decimal.Decimal `json:"freight_share"`
	InsuranceShare decimal.Decimal `json:"insurance_share"`
	OtherShare     decimal.Decimal `json:"other_share"`
	LandedCost     decimal.Decimal `json:"landed_cost"`
}

// NewInvoiceLine creates a new invoice line with the computed line total.
// The sequence is assigned by the owning invoice when the line is added.
func NewInvoiceLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal) (InvoiceLine, error) {
	if productID == uuid.Nil {
		return InvoiceLine{}, shared.NewDomainError("INVALID_PRODUCT", "Line item product cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return InvoiceLine{}, shared.NewDomainError("INVALID_QUANTITY", "Line item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return InvoiceLine{}, shared.NewDomainError("INVALID_UNIT_PRICE", "Line item unit price cannot be negative")
	}

	lineTotal := quantity.Mul(unitPrice)
	return InvoiceLine{
		ID:             uuid.New(),
		ProductID:      productID,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		LineTotal:      lineTotal,
		FreightShare:   decimal.Zero,
		InsuranceShare: decimal.Zero,
		OtherShare:     decimal.Zero,
		LandedCost:     lineTotal,
	}, nil
}

// SetCostShares records the prorated cost shares and recomputes the landed cost
func (l *InvoiceLine) SetCostShares(freight, insurance, other decimal.Decimal) {
	l.FreightShare = freight
	l.InsuranceShare = insurance
	l.OtherShare = other
	l.LandedCost = l.LineTotal.Add(freight).Add(insurance).Add(other)
}
