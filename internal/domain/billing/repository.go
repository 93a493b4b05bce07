package billing

import (
	"context"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// InstallmentRepository defines the interface for installment persistence
type InstallmentRepository interface {
	// FindByID finds an installment by its surrogate ID
	FindByID(ctx context.Context, id uuid.UUID) (*Installment, error)

	// FindByInvoiceKey finds the installment batch of an invoice, ordered
	// by installment number
	FindByInvoiceKey(ctx context.Context, kind InstallmentKind, key trade.InvoiceKey) ([]Installment, error)

	// FindByStatus finds installments by status
	FindByStatus(ctx context.Context, kind InstallmentKind, status InstallmentStatus, filter shared.Filter) ([]Installment, error)

	// ReplaceForInvoice atomically discards the previous batch for the
	// invoice key and inserts the new one
	ReplaceForInvoice(ctx context.Context, kind InstallmentKind, key trade.InvoiceKey, installments []*Installment) error

	// DeleteForInvoice removes the whole batch for an invoice key
	DeleteForInvoice(ctx context.Context, kind InstallmentKind, key trade.InvoiceKey) error

	// Save creates or updates an installment
	Save(ctx context.Context, installment *Installment) error

	// SaveWithLock updates an installment with an optimistic version check,
	// returning shared.ErrConcurrencyConflict when the row changed underneath
	SaveWithLock(ctx context.Context, installment *Installment) error
}

// PaymentConditionRepository defines the interface for payment condition persistence
type PaymentConditionRepository interface {
	// FindByID finds a payment condition with its entries
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentCondition, error)

	// FindAll finds payment conditions with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentCondition, error)

	// Save creates or updates a payment condition together with its entries
	Save(ctx context.Context, condition *PaymentCondition) error

	// Delete removes a payment condition and its entries
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentMethodRepository defines the interface for payment method persistence
type PaymentMethodRepository interface {
	// FindByID finds a payment method by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)

	// FindAll finds payment methods with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentMethod, error)

	// Save creates or updates a payment method
	Save(ctx context.Context, method *PaymentMethod) error
}

// StandaloneChargeRepository defines the interface for standalone charge persistence
type StandaloneChargeRepository interface {
	// FindByID finds a charge by ID
	FindByID(ctx context.Context, id uuid.UUID) (*StandaloneCharge, error)

	// FindByStatus finds charges by status
	FindByStatus(ctx context.Context, status ChargeStatus, filter shared.Filter) ([]StandaloneCharge, error)

	// FindAll finds charges with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]StandaloneCharge, error)

	// Save creates or updates a charge
	Save(ctx context.Context, charge *StandaloneCharge) error

	// SaveWithLock updates a charge with an optimistic version check,
	// returning shared.ErrConcurrencyConflict when the row changed underneath
	SaveWithLock(ctx context.Context, charge *StandaloneCharge) error
}
