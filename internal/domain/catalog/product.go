package catalog

import (
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a purchasable or sellable item referenced by invoice lines.
// LastCost tracks the most recent landed unit cost coming from purchase
// proration; it is informational and never drives invoice totals.
type Product struct {
	shared.BaseAggregateRoot
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"` // UN, KG, CX...
	SalePrice   decimal.Decimal `json:"sale_price"`
	LastCost    decimal.Decimal `json:"last_cost"`
	Active      bool            `json:"active"`
}

// NewProduct creates a new active product
func NewProduct(code, description, unit string, salePrice decimal.Decimal) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Product description cannot be empty")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product sale price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Description:       description,
		Unit:              unit,
		SalePrice:         salePrice,
		LastCost:          decimal.Zero,
		Active:            true,
	}, nil
}

// UpdateSalePrice changes the sale price
func (p *Product) UpdateSalePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product sale price cannot be negative")
	}
	p.SalePrice = price
	p.IncrementVersion()
	return nil
}

// RecordLastCost updates the last landed unit cost observed for the product
func (p *Product) RecordLastCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Product cost cannot be negative")
	}
	p.LastCost = cost
	p.IncrementVersion()
	return nil
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() {
	p.Active = false
	p.IncrementVersion()
}

// Activate marks the product as active again
func (p *Product) Activate() {
	p.Active = true
	p.IncrementVersion()
}
