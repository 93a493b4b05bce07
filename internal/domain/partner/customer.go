package partner

import (
	"github.com/gestor/backend/internal/domain/shared"
)

// Customer is a party the company sells to. Only the fields the billing
// ledgers depend on are modeled; fiscal registration data lives in Document.
type Customer struct {
	shared.BaseAggregateRoot
	Name     string `json:"name"`
	Document string `json:"document"` // CPF or CNPJ, digits only
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Active   bool   `json:"active"`
}

// NewCustomer creates a new active customer
func NewCustomer(name, document string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Document:          document,
		Active:            true,
	}, nil
}

// UpdateContact updates the customer's contact information
func (c *Customer) UpdateContact(email, phone, address string) {
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.IncrementVersion()
}

// Rename changes the customer name
func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.IncrementVersion()
	return nil
}

// Deactivate marks the customer as inactive. Existing receivables are
// unaffected; new invoices should not reference inactive customers.
func (c *Customer) Deactivate() {
	c.Active = false
	c.IncrementVersion()
}

// Activate marks the customer as active again
func (c *Customer) Activate() {
	c.Active = true
	c.IncrementVersion()
}
