package billing

import (
	"fmt"
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeStatus represents the status of a standalone charge. The vocabulary
// deliberately differs from InstallmentStatus: standalone charges evolved
// their own lifecycle in the payable ledger.
type ChargeStatus string

const (
	ChargeStatusPending       ChargeStatus = "PENDING"
	ChargeStatusPartiallyPaid ChargeStatus = "PARTIALLY_PAID"
	ChargeStatusPaid          ChargeStatus = "PAID"
	ChargeStatusCancelled     ChargeStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ChargeStatus
func (s ChargeStatus) IsValid() bool {
	switch s {
	case ChargeStatusPending, ChargeStatusPartiallyPaid, ChargeStatusPaid, ChargeStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ChargeStatus
func (s ChargeStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the charge is in a terminal state
func (s ChargeStatus) IsTerminal() bool {
	return s == ChargeStatusPaid || s == ChargeStatusCancelled
}

// CanSettle returns true if payments can be applied in this status
func (s ChargeStatus) CanSettle() bool {
	return s == ChargeStatusPending || s == ChargeStatusPartiallyPaid
}

// StandaloneCharge is a manually entered payable not tied to any invoice.
// Unlike invoice installments it carries its own configured interest and
// penalty rates, settled with daily compounding.
type StandaloneCharge struct {
	shared.BaseAggregateRoot
	Description         string          `json:"description"`
	SupplierID          *uuid.UUID      `json:"supplier_id,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	Discount            decimal.Decimal `json:"discount"`
	Interest            decimal.Decimal `json:"interest"`
	Penalty             decimal.Decimal `json:"penalty"`
	TotalDue            decimal.Decimal `json:"total_due"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"` // percent per month
	PenaltyRate         decimal.Decimal `json:"penalty_rate"`          // percent of the amount
	EmissionDate        time.Time       `json:"emission_date"`
	DueDate             time.Time       `json:"due_date"`
	PaymentDate         *time.Time      `json:"payment_date,omitempty"`
	PaymentMethodID     *uuid.UUID      `json:"payment_method_id,omitempty"`
	Status              ChargeStatus    `json:"status"`
}

// NewStandaloneCharge creates a new pending charge
func NewStandaloneCharge(
	description string,
	supplierID *uuid.UUID,
	amount decimal.Decimal,
	emissionDate, dueDate time.Time,
	monthlyInterestRate, penaltyRate decimal.Decimal,
) (*StandaloneCharge, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Charge description cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Charge amount must be positive")
	}
	if dueDate.Before(emissionDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede the emission date")
	}
	if monthlyInterestRate.IsNegative() || penaltyRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Charge rates cannot be negative")
	}

	charge := &StandaloneCharge{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		Description:         description,
		SupplierID:          supplierID,
		Amount:              amount,
		PaidAmount:          decimal.Zero,
		Discount:            decimal.Zero,
		Interest:            decimal.Zero,
		Penalty:             decimal.Zero,
		TotalDue:            amount,
		MonthlyInterestRate: monthlyInterestRate,
		PenaltyRate:         penaltyRate,
		EmissionDate:        emissionDate,
		DueDate:             dueDate,
		Status:              ChargeStatusPending,
	}

	charge.AddDomainEvent(NewChargeCreatedEvent(charge))

	return charge, nil
}

// Calculator returns the compound daily calculator configured with the
// charge's own rates
func (c *StandaloneCharge) Calculator() CompoundDailyAccrual {
	return NewCompoundDailyAccrual(c.MonthlyInterestRate, c.PenaltyRate)
}

// ApplyDiscount records a settlement discount
func (c *StandaloneCharge) ApplyDiscount(discount decimal.Decimal) error {
	if !c.Status.CanSettle() {
		return shared.NewDomainError("CANNOT_SETTLE",
			fmt.Sprintf("Cannot modify charge in %s status", c.Status))
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Discount cannot be negative")
	}
	c.Discount = discount
	c.UpdatedAt = time.Now()
	return nil
}

// Settle applies a payment to the charge using its configured rates.
// Interest and penalty only accrue for late payments; on-time payments
// settle at the base amount even when rates are configured.
func (c *StandaloneCharge) Settle(paidAmount decimal.Decimal, paymentDate time.Time, paymentMethodID *uuid.UUID) error {
	if !c.Status.CanSettle() {
		return shared.NewDomainError("CANNOT_SETTLE",
			fmt.Sprintf("Cannot settle charge in %s status", c.Status))
	}
	if paidAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Paid amount must be positive")
	}
	if paymentDate.IsZero() {
		return shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}

	accrual := c.Calculator().Accrue(c.Amount, c.DueDate, paymentDate)
	c.Interest = accrual.Interest
	c.Penalty = accrual.Penalty
	c.TotalDue = c.Amount.Add(c.Interest).Add(c.Penalty).Sub(c.Discount)

	c.PaidAmount = c.PaidAmount.Add(paidAmount)
	c.PaymentDate = &paymentDate
	if paymentMethodID != nil {
		c.PaymentMethodID = paymentMethodID
	}

	if c.PaidAmount.GreaterThanOrEqual(c.TotalDue) {
		c.Status = ChargeStatusPaid
		c.AddDomainEvent(NewChargePaidEvent(c))
	} else {
		c.Status = ChargeStatusPartiallyPaid
		c.AddDomainEvent(NewChargePartiallyPaidEvent(c, paidAmount))
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Cancel cancels the charge
func (c *StandaloneCharge) Cancel() error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel charge in %s status", c.Status))
	}

	c.Status = ChargeStatusCancelled
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewChargeCancelledEvent(c))

	return nil
}

// IsPaid returns true if the charge is fully paid
func (c *StandaloneCharge) IsPaid() bool {
	return c.Status == ChargeStatusPaid
}

// IsCancelled returns true if the charge is cancelled
func (c *StandaloneCharge) IsCancelled() bool {
	return c.Status == ChargeStatusCancelled
}
