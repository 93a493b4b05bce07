package billing

import (
	"time"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/shared/valueobject"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// InstallmentScheduler expands one invoice total into an ordered set of
// dated installments using a payment-condition template.
//
// The scheduler is stateless and idempotent for the same inputs; it knows
// nothing about previously generated batches. Callers must replace the
// existing batch for the same invoice key when regenerating.
type InstallmentScheduler struct{}

// NewInstallmentScheduler creates a new scheduler
func NewInstallmentScheduler() *InstallmentScheduler {
	return &InstallmentScheduler{}
}

// Generate produces the installment set for an invoice total.
//
// Without a payment condition (or with an empty template) a single
// installment falls due on the emission date for the full amount.
// Otherwise the total is split evenly across the template's entries,
// rounded to cents, with the last entry reconciling the set to the exact
// total. Entry percentages are authoring-time metadata and are not
// consulted here.
func (s *InstallmentScheduler) Generate(
	kind InstallmentKind,
	invoiceKey trade.InvoiceKey,
	total decimal.Decimal,
	emissionDate time.Time,
	condition *PaymentCondition,
) ([]*Installment, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice total must be positive to generate installments")
	}

	if condition == nil || condition.EntryCount() == 0 {
		inst, err := NewInstallment(kind, invoiceKey, 1, 1, total, emissionDate, emissionDate, nil)
		if err != nil {
			return nil, err
		}
		return []*Installment{inst}, nil
	}

	n := condition.EntryCount()
	amounts, err := valueobject.SplitEven(total, n, 2)
	if err != nil {
		return nil, err
	}

	installments := make([]*Installment, 0, n)
	for i, entry := range condition.Entries {
		dueDate := emissionDate.AddDate(0, 0, entry.OffsetDays)
		inst, err := NewInstallment(kind, invoiceKey, i+1, n, amounts[i], emissionDate, dueDate, entry.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, nil
}
