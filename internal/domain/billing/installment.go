package billing

import (
	"fmt"
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentKind distinguishes the payable ledger (purchase invoices) from
// the receivable ledger (sales invoices)
type InstallmentKind string

const (
	InstallmentKindPayable    InstallmentKind = "PAYABLE"
	InstallmentKindReceivable InstallmentKind = "RECEIVABLE"
)

// IsValid checks if the kind is a valid InstallmentKind
func (k InstallmentKind) IsValid() bool {
	switch k {
	case InstallmentKindPayable, InstallmentKindReceivable:
		return true
	}
	return false
}

// String returns the string representation of InstallmentKind
func (k InstallmentKind) String() string {
	return string(k)
}

// InstallmentStatus represents the status of an installment
type InstallmentStatus string

const (
	InstallmentStatusPending          InstallmentStatus = "PENDING"
	InstallmentStatusPartiallySettled InstallmentStatus = "PARTIALLY_SETTLED"
	InstallmentStatusSettled          InstallmentStatus = "SETTLED"
	InstallmentStatusCancelled        InstallmentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	switch s {
	case InstallmentStatusPending, InstallmentStatusPartiallySettled,
		InstallmentStatusSettled, InstallmentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the installment is in a terminal state
func (s InstallmentStatus) IsTerminal() bool {
	return s == InstallmentStatusSettled || s == InstallmentStatusCancelled
}

// CanSettle returns true if payments can be applied in this status
func (s InstallmentStatus) CanSettle() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusPartiallySettled
}

// Installment is one payable or receivable ledger row generated from an
// invoice. It is keyed by the invoice's composite natural key plus the
// installment number; the surrogate ID exists for persistence lookups.
//
// Installments are created in batches by the scheduler whenever the parent
// invoice is saved (the previous batch for the same key is discarded), and
// afterwards only mutated by settlement or cancellation. They are never
// deleted individually.
type Installment struct {
	shared.BaseAggregateRoot
	Kind              InstallmentKind   `json:"kind"`
	InvoiceKey        trade.InvoiceKey  `json:"invoice_key"`
	Number            int               `json:"number"`
	TotalInstallments int               `json:"total_installments"`
	OriginalAmount    decimal.Decimal   `json:"original_amount"`
	PaidAmount        decimal.Decimal   `json:"paid_amount"`
	Discount          decimal.Decimal   `json:"discount"`
	Interest          decimal.Decimal   `json:"interest"`
	Penalty           decimal.Decimal   `json:"penalty"`
	TotalDue          decimal.Decimal   `json:"total_due"`
	EmissionDate      time.Time         `json:"emission_date"`
	DueDate           time.Time         `json:"due_date"`
	PaymentDate       *time.Time        `json:"payment_date,omitempty"`
	PaymentMethodID   *uuid.UUID        `json:"payment_method_id,omitempty"`
	Status            InstallmentStatus `json:"status"`
}

// NewInstallment creates a new pending installment
func NewInstallment(
	kind InstallmentKind,
	invoiceKey trade.InvoiceKey,
	number, totalInstallments int,
	amount decimal.Decimal,
	emissionDate, dueDate time.Time,
	paymentMethodID *uuid.UUID,
) (*Installment, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", fmt.Sprintf("Installment kind %q is not valid", kind))
	}
	if err := invoiceKey.Validate(); err != nil {
		return nil, err
	}
	if number < 1 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Installment number must start at 1")
	}
	if totalInstallments < number {
		return nil, shared.NewDomainError("INVALID_NUMBER",
			fmt.Sprintf("Installment number %d exceeds total of %d", number, totalInstallments))
	}
	// zero is allowed: splitting a sub-cent total over many entries can
	// leave individual installments with nothing to collect
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Installment amount cannot be negative")
	}
	if dueDate.Before(emissionDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede the emission date")
	}

	inst := &Installment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		InvoiceKey:        invoiceKey,
		Number:            number,
		TotalInstallments: totalInstallments,
		OriginalAmount:    amount,
		PaidAmount:        decimal.Zero,
		Discount:          decimal.Zero,
		Interest:          decimal.Zero,
		Penalty:           decimal.Zero,
		TotalDue:          amount,
		EmissionDate:      emissionDate,
		DueDate:           dueDate,
		PaymentMethodID:   paymentMethodID,
		Status:            InstallmentStatusPending,
	}

	inst.AddDomainEvent(NewInstallmentCreatedEvent(inst))

	return inst, nil
}

// ApplyDiscount records a settlement discount to be subtracted from the
// total due. The discount is only subtracted, never clamped.
func (i *Installment) ApplyDiscount(discount decimal.Decimal) error {
	if !i.Status.CanSettle() {
		return shared.NewDomainError("CANNOT_SETTLE",
			fmt.Sprintf("Cannot modify installment in %s status", i.Status))
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Discount cannot be negative")
	}
	i.Discount = discount
	i.UpdatedAt = time.Now()
	return nil
}

// Settle applies a payment to the installment. The calculator computes
// overdue interest and penalty for the payment date; the resulting total
// due is original + interest + penalty - discount. Paid amounts accumulate
// across partial settlements.
func (i *Installment) Settle(calc AccrualCalculator, paidAmount decimal.Decimal, paymentDate time.Time, paymentMethodID *uuid.UUID) error {
	if !i.Status.CanSettle() {
		return shared.NewDomainError("CANNOT_SETTLE",
			fmt.Sprintf("Cannot settle installment in %s status", i.Status))
	}
	if paidAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Paid amount must be positive")
	}
	if paymentDate.IsZero() {
		return shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}

	accrual := calc.Accrue(i.OriginalAmount, i.DueDate, paymentDate)
	i.Interest = accrual.Interest
	i.Penalty = accrual.Penalty
	i.TotalDue = i.OriginalAmount.Add(i.Interest).Add(i.Penalty).Sub(i.Discount)

	i.PaidAmount = i.PaidAmount.Add(paidAmount)
	i.PaymentDate = &paymentDate
	if paymentMethodID != nil {
		i.PaymentMethodID = paymentMethodID
	}

	if i.PaidAmount.GreaterThanOrEqual(i.TotalDue) {
		i.Status = InstallmentStatusSettled
		i.AddDomainEvent(NewInstallmentSettledEvent(i))
	} else {
		i.Status = InstallmentStatusPartiallySettled
		i.AddDomainEvent(NewInstallmentPartiallySettledEvent(i, paidAmount))
	}

	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Cancel cancels the installment. Settled installments stay settled; an
// invoice-level cancellation must skip them.
func (i *Installment) Cancel() error {
	if i.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel installment in %s status", i.Status))
	}

	i.Status = InstallmentStatusCancelled
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInstallmentCancelledEvent(i))

	return nil
}

// IsSettled returns true if the installment is fully settled
func (i *Installment) IsSettled() bool {
	return i.Status == InstallmentStatusSettled
}

// IsCancelled returns true if the installment is cancelled
func (i *Installment) IsCancelled() bool {
	return i.Status == InstallmentStatusCancelled
}

// IsOverdue returns true if the installment is past due and not terminal
func (i *Installment) IsOverdue(at time.Time) bool {
	if i.Status.IsTerminal() {
		return false
	}
	return DaysLate(i.DueDate, at) > 0
}

// OutstandingAmount returns how much remains to be paid
func (i *Installment) OutstandingAmount() decimal.Decimal {
	outstanding := i.TotalDue.Sub(i.PaidAmount)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}
