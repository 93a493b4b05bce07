package partner

import (
	"context"
	"errors"

	"github.com/gestor/backend/internal/domain/partner"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PartnerService provides CRUD operations for the parties the ledgers
// reference: customers and suppliers
type PartnerService struct {
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(
	customerRepo partner.CustomerRepository,
	supplierRepo partner.SupplierRepository,
	logger *zap.Logger,
) *PartnerService {
	return &PartnerService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// CreatePartyRequest creates a customer or supplier
type CreatePartyRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Document string `json:"document" validate:"max=14"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// PartyResponse represents a customer or supplier in responses
type PartyResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Document string    `json:"document,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address,omitempty"`
	Active   bool      `json:"active"`
}

func customerToResponse(c *partner.Customer) *PartyResponse {
	return &PartyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		Active:   c.Active,
	}
}

func supplierToResponse(s *partner.Supplier) *PartyResponse {
	return &PartyResponse{
		ID:       s.ID,
		Name:     s.Name,
		Document: s.Document,
		Email:    s.Email,
		Phone:    s.Phone,
		Address:  s.Address,
		Active:   s.Active,
	}
}

// CreateCustomer creates a new customer. Documents must be unique among
// customers when provided.
func (s *PartnerService) CreateCustomer(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	if req.Document != "" {
		existing, err := s.customerRepo.FindByDocument(ctx, req.Document)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrAlreadyExists
		}
	}

	customer, err := partner.NewCustomer(req.Name, req.Document)
	if err != nil {
		return nil, err
	}
	customer.UpdateContact(req.Email, req.Phone, req.Address)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Customer created", zap.String("customer_id", customer.ID.String()), zap.String("name", customer.Name))

	return customerToResponse(customer), nil
}

// GetCustomer returns a customer by ID
func (s *PartnerService) GetCustomer(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// ListCustomers lists customers
func (s *PartnerService) ListCustomers(ctx context.Context, filter shared.Filter) ([]PartyResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]PartyResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

// DeactivateCustomer marks a customer inactive; existing receivables keep
// their reference
func (s *PartnerService) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Deactivate()
	return s.customerRepo.Save(ctx, customer)
}

// CreateSupplier creates a new supplier
func (s *PartnerService) CreateSupplier(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	if req.Document != "" {
		existing, err := s.supplierRepo.FindByDocument(ctx, req.Document)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrAlreadyExists
		}
	}

	supplier, err := partner.NewSupplier(req.Name, req.Document)
	if err != nil {
		return nil, err
	}
	supplier.UpdateContact(req.Email, req.Phone, req.Address)

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		s.logger.Error("Failed to save supplier", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Supplier created", zap.String("supplier_id", supplier.ID.String()), zap.String("name", supplier.Name))

	return supplierToResponse(supplier), nil
}

// GetSupplier returns a supplier by ID
func (s *PartnerService) GetSupplier(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

// ListSuppliers lists suppliers
func (s *PartnerService) ListSuppliers(ctx context.Context, filter shared.Filter) ([]PartyResponse, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]PartyResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

// DeactivateSupplier marks a supplier inactive
func (s *PartnerService) DeactivateSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}
