package catalog

import (
	"context"
	"errors"

	"github.com/gestor/backend/internal/domain/catalog"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService provides CRUD operations for the product catalog
type ProductService struct {
	productRepo catalog.ProductRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

// CreateProductRequest creates a product
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,max=30"`
	Description string          `json:"description" validate:"required,max=200"`
	Unit        string          `json:"unit" validate:"max=6"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	LastCost    decimal.Decimal `json:"last_cost"`
	Active      bool            `json:"active"`
}

func toResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Unit:        p.Unit,
		SalePrice:   p.SalePrice,
		LastCost:    p.LastCost,
		Active:      p.Active,
	}
}

// CreateProduct creates a new product with a unique code
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	existing, err := s.productRepo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	product, err := catalog.NewProduct(req.Code, req.Description, req.Unit, req.SalePrice)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created", zap.String("product_id", product.ID.String()), zap.String("code", product.Code))

	return toResponse(product), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

// ListProducts lists products
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *toResponse(&products[i]))
	}
	return out, nil
}

// UpdateSalePrice changes a product's sale price
func (s *ProductService) UpdateSalePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.UpdateSalePrice(price); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

// RecordLastCost updates a product's last observed landed unit cost
func (s *ProductService) RecordLastCost(ctx context.Context, id uuid.UUID, cost decimal.Decimal) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := product.RecordLastCost(cost); err != nil {
		return err
	}
	return s.productRepo.Save(ctx, product)
}

// DeactivateProduct marks a product inactive
func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deactivate()
	return s.productRepo.Save(ctx, product)
}
