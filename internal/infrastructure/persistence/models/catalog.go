package models

import (
	"github.com/gestor/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	AggregateModel
	Code        string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Description string          `gorm:"type:varchar(255);not null"`
	Unit        string          `gorm:"type:varchar(6)"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LastCost    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Description:       m.Description,
		Unit:              m.Unit,
		SalePrice:         m.SalePrice,
		LastCost:          m.LastCost,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Description = p.Description
	m.Unit = p.Unit
	m.SalePrice = p.SalePrice
	m.LastCost = p.LastCost
	m.Active = p.Active
}
