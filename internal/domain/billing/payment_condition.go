package billing

import (
	"fmt"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentConditionEntry is one installment slot of a payment condition
// template: which installment it is, how many days after emission it falls
// due, what share of the total it nominally represents and, optionally, the
// preferred payment method.
type PaymentConditionEntry struct {
	Number          int             `json:"number"`
	OffsetDays      int             `json:"offset_days"`
	Percentage      decimal.Decimal `json:"percentage"`
	PaymentMethodID *uuid.UUID      `json:"payment_method_id,omitempty"`
}

// PaymentCondition is a reusable template describing how an invoice total
// splits into installments. Percentages must sum to 100 and are enforced
// here, at authoring time; installment generation does not re-validate them.
type PaymentCondition struct {
	shared.BaseAggregateRoot
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Active      bool                    `json:"active"`
	Entries     []PaymentConditionEntry `json:"entries"`
}

// NewPaymentCondition creates a new validated payment condition
func NewPaymentCondition(name string, entries []PaymentConditionEntry) (*PaymentCondition, error) {
	pc := &PaymentCondition{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
		Entries:           entries,
	}
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	return pc, nil
}

// Validate checks the template invariants
func (pc *PaymentCondition) Validate() error {
	if pc.Name == "" {
		return shared.NewDomainError("INVALID_CONDITION_NAME", "Payment condition name cannot be empty")
	}
	if len(pc.Name) > 100 {
		return shared.NewDomainError("INVALID_CONDITION_NAME", "Payment condition name cannot exceed 100 characters")
	}

	if len(pc.Entries) == 0 {
		return nil
	}

	percentageSum := decimal.Zero
	for i, e := range pc.Entries {
		if e.Number != i+1 {
			return shared.NewDomainError("INVALID_ENTRY_NUMBER",
				fmt.Sprintf("Entry %d is out of sequence (expected %d)", e.Number, i+1))
		}
		if e.OffsetDays < 0 {
			return shared.NewDomainError("INVALID_ENTRY_OFFSET",
				fmt.Sprintf("Entry %d has a negative due-date offset", e.Number))
		}
		if e.Percentage.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_ENTRY_PERCENTAGE",
				fmt.Sprintf("Entry %d must have a positive percentage", e.Number))
		}
		percentageSum = percentageSum.Add(e.Percentage)
	}

	if !percentageSum.Equal(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_PERCENTAGE_SUM",
			fmt.Sprintf("Entry percentages must sum to 100, got %s", percentageSum))
	}
	return nil
}

// EntryCount returns the number of installment slots in the template
func (pc *PaymentCondition) EntryCount() int {
	return len(pc.Entries)
}

// Deactivate marks the condition as inactive so it stops being offered
func (pc *PaymentCondition) Deactivate() {
	pc.Active = false
	pc.IncrementVersion()
}
