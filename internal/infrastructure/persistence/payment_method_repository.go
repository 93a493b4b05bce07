package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentMethodRepository implements PaymentMethodRepository using GORM
type GormPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGormPaymentMethodRepository creates a new GormPaymentMethodRepository
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

// FindByID finds a payment method by ID
func (r *GormPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentMethod, error) {
	var model models.PaymentMethodModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds payment methods with filtering
func (r *GormPaymentMethodRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentMethod, error) {
	var methodModels []models.PaymentMethodModel
	query := r.db.WithContext(ctx).Model(&models.PaymentMethodModel{})

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, PaymentMethodSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&methodModels).Error; err != nil {
		return nil, err
	}
	methods := make([]billing.PaymentMethod, len(methodModels))
	for i, model := range methodModels {
		methods[i] = *model.ToDomain()
	}
	return methods, nil
}

// Save creates or updates a payment method
func (r *GormPaymentMethodRepository) Save(ctx context.Context, method *billing.PaymentMethod) error {
	var model models.PaymentMethodModel
	model.FromDomain(method)
	return r.db.WithContext(ctx).Save(&model).Error
}
