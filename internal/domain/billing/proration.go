package billing

import (
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/shared/valueobject"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ProrationEngine distributes the shared cost pools of an invoice (freight,
// insurance, other expenses) across its line items in proportion to each
// item's line total.
type ProrationEngine struct{}

// NewProrationEngine creates a new proration engine
func NewProrationEngine() *ProrationEngine {
	return &ProrationEngine{}
}

// Prorate allocates the three cost pools across the lines in place. Each
// pool is distributed independently: every line but the last receives its
// proportional share rounded half-up to 4 decimal places, and the last line
// absorbs the rounding drift so the shares sum exactly to the pool.
//
// When the line totals sum to zero no allocation happens (shares stay
// zero), avoiding a division by zero. The lines' landed costs are
// recomputed either way.
func (e *ProrationEngine) Prorate(lines []*trade.InvoiceLine, freight, insurance, other decimal.Decimal) error {
	if len(lines) == 0 {
		return shared.NewDomainError("EMPTY_INVOICE", "Cannot prorate costs over an empty line set")
	}
	if freight.IsNegative() || insurance.IsNegative() || other.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Cost pools cannot be negative")
	}

	weights := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		weights[i] = l.LineTotal
	}

	freightShares, err := valueobject.SplitProportional(freight, weights, 4)
	if err != nil {
		return err
	}
	insuranceShares, err := valueobject.SplitProportional(insurance, weights, 4)
	if err != nil {
		return err
	}
	otherShares, err := valueobject.SplitProportional(other, weights, 4)
	if err != nil {
		return err
	}

	for i, l := range lines {
		l.SetCostShares(freightShares[i], insuranceShares[i], otherShares[i])
	}
	return nil
}
