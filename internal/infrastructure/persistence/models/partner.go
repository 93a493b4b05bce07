package models

import (
	"github.com/gestor/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate
type CustomerModel struct {
	AggregateModel
	Name     string `gorm:"type:varchar(200);not null;index"`
	Document string `gorm:"type:varchar(20);uniqueIndex"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(30)"`
	Address  string `gorm:"type:varchar(255)"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Document:          m.Document,
		Email:             m.Email,
		Phone:             m.Phone,
		Address:           m.Address,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Document = c.Document
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.Active = c.Active
}

// SupplierModel is the persistence model for the Supplier aggregate
type SupplierModel struct {
	AggregateModel
	Name     string `gorm:"type:varchar(200);not null;index"`
	Document string `gorm:"type:varchar(20);uniqueIndex"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(30)"`
	Address  string `gorm:"type:varchar(255)"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Document:          m.Document,
		Email:             m.Email,
		Phone:             m.Phone,
		Address:           m.Address,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Supplier
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.Document = s.Document
	m.Email = s.Email
	m.Phone = s.Phone
	m.Address = s.Address
	m.Active = s.Active
}
