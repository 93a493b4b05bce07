package partner

import (
	"github.com/gestor/backend/internal/domain/shared"
)

// Supplier is a party the company buys from
type Supplier struct {
	shared.BaseAggregateRoot
	Name     string `json:"name"`
	Document string `json:"document"` // CNPJ, digits only
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Active   bool   `json:"active"`
}

// NewSupplier creates a new active supplier
func NewSupplier(name, document string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Document:          document,
		Active:            true,
	}, nil
}

// UpdateContact updates the supplier's contact information
func (s *Supplier) UpdateContact(email, phone, address string) {
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.IncrementVersion()
}

// Rename changes the supplier name
func (s *Supplier) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	s.Name = name
	s.IncrementVersion()
	return nil
}

// Deactivate marks the supplier as inactive
func (s *Supplier) Deactivate() {
	s.Active = false
	s.IncrementVersion()
}

// Activate marks the supplier as active again
func (s *Supplier) Activate() {
	s.Active = true
	s.IncrementVersion()
}
