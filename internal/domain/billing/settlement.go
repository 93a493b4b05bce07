package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accrual is the overdue interest and penalty computed at settlement time
type Accrual struct {
	Interest decimal.Decimal
	Penalty  decimal.Decimal
}

// ZeroAccrual returns an accrual with zero interest and penalty
func ZeroAccrual() Accrual {
	return Accrual{Interest: decimal.Zero, Penalty: decimal.Zero}
}

// AccrualCalculator computes overdue charges for a payment made on
// paymentDate against a base amount that fell due on dueDate.
//
// Two implementations coexist on purpose: SimpleAccrual for invoice-linked
// ledgers and CompoundDailyAccrual for standalone manual charges. Their
// business rules genuinely differ and must not be unified.
type AccrualCalculator interface {
	Accrue(base decimal.Decimal, dueDate, paymentDate time.Time) Accrual
}

// DaysLate returns the integer day difference between the payment date and
// the due date, ignoring the time-of-day component. Zero or negative means
// the payment is on time.
func DaysLate(dueDate, paymentDate time.Time) int {
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	paid := time.Date(paymentDate.Year(), paymentDate.Month(), paymentDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(paid.Sub(due).Hours() / 24)
}

var (
	simplePenaltyRate       = decimal.RequireFromString("0.02")    // flat 2% of the original amount
	simpleDailyInterestRate = decimal.RequireFromString("0.00033") // 0.033% per day late
	hundred                 = decimal.NewFromInt(100)
	thirty                  = decimal.NewFromInt(30)
)

// SimpleAccrual is the pro-rata strategy used for installments generated
// from invoices: a flat 2% penalty plus linear interest of 0.033% of the
// original amount per day late. Rates are fixed, not configurable.
type SimpleAccrual struct{}

// Accrue implements AccrualCalculator
func (SimpleAccrual) Accrue(base decimal.Decimal, dueDate, paymentDate time.Time) Accrual {
	daysLate := DaysLate(dueDate, paymentDate)
	if daysLate <= 0 {
		return ZeroAccrual()
	}

	penalty := base.Mul(simplePenaltyRate).Round(2)
	interest := base.Mul(simpleDailyInterestRate).
		Mul(decimal.NewFromInt(int64(daysLate))).
		Round(2)

	return Accrual{Interest: interest, Penalty: penalty}
}

// CompoundDailyAccrual is the strategy used for standalone charges. The
// configured monthly interest rate is converted to a daily rate by dividing
// by a fixed 30 (never by the actual calendar days of the elapsed months)
// and compounded once per day late. The penalty rate is applied once,
// without compounding.
//
// Nothing accrues when payment happens on or before the due date, even when
// rates are configured.
type CompoundDailyAccrual struct {
	MonthlyInterestRate decimal.Decimal // percent per month, e.g. 3 for 3%
	PenaltyRate         decimal.Decimal // percent of the base amount, e.g. 2 for 2%
}

// NewCompoundDailyAccrual creates a calculator from percentage rates
func NewCompoundDailyAccrual(monthlyInterestRate, penaltyRate decimal.Decimal) CompoundDailyAccrual {
	return CompoundDailyAccrual{
		MonthlyInterestRate: monthlyInterestRate,
		PenaltyRate:         penaltyRate,
	}
}

// Accrue implements AccrualCalculator.
//
// The compounded amount is computed by iterative multiplication, rounding
// the running amount to 4 decimal places after every step. The intermediate
// rounding is intentional: it changes the result versus a one-shot power
// and downstream balances depend on the iterated value.
func (c CompoundDailyAccrual) Accrue(base decimal.Decimal, dueDate, paymentDate time.Time) Accrual {
	daysLate := DaysLate(dueDate, paymentDate)
	if daysLate <= 0 {
		return ZeroAccrual()
	}

	penalty := decimal.Zero
	if c.PenaltyRate.IsPositive() {
		penalty = base.Mul(c.PenaltyRate).Div(hundred).Round(2)
	}

	interest := decimal.Zero
	if c.MonthlyInterestRate.IsPositive() {
		dailyRate := c.MonthlyInterestRate.Div(hundred).Div(thirty)
		factor := decimal.NewFromInt(1).Add(dailyRate)
		amount := base
		for day := 0; day < daysLate; day++ {
			amount = amount.Mul(factor).Round(4)
		}
		interest = amount.Sub(base).Round(2)
	}

	return Accrual{Interest: interest, Penalty: penalty}
}
