package billing

import (
	"github.com/gestor/backend/internal/domain/shared"
)

// PaymentMethod is a lookup aggregate for how a settlement was paid
// (cash, bank transfer, card, ...).
type PaymentMethod struct {
	shared.BaseAggregateRoot
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewPaymentMethod creates a new payment method
func NewPaymentMethod(name string) (*PaymentMethod, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_METHOD_NAME", "Payment method name cannot be empty")
	}
	if len(name) > 60 {
		return nil, shared.NewDomainError("INVALID_METHOD_NAME", "Payment method name cannot exceed 60 characters")
	}
	return &PaymentMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}, nil
}

// Deactivate marks the method as inactive
func (m *PaymentMethod) Deactivate() {
	m.Active = false
	m.IncrementVersion()
}
