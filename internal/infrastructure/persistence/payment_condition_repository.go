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

// GormPaymentConditionRepository implements PaymentConditionRepository using GORM
type GormPaymentConditionRepository struct {
	db *gorm.DB
}

// NewGormPaymentConditionRepository creates a new GormPaymentConditionRepository
func NewGormPaymentConditionRepository(db *gorm.DB) *GormPaymentConditionRepository {
	return &GormPaymentConditionRepository{db: db}
}

// FindByID finds a payment condition with its entries
func (r *GormPaymentConditionRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentCondition, error) {
	var model models.PaymentConditionModel
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds payment conditions with filtering
func (r *GormPaymentConditionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentCondition, error) {
	var conditionModels []models.PaymentConditionModel
	query := r.db.WithContext(ctx).Model(&models.PaymentConditionModel{}).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") })

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, PaymentConditionSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&conditionModels).Error; err != nil {
		return nil, err
	}
	conditions := make([]billing.PaymentCondition, len(conditionModels))
	for i, model := range conditionModels {
		conditions[i] = *model.ToDomain()
	}
	return conditions, nil
}

// Save creates or updates a payment condition together with its entries.
// Entries are replaced wholesale so reordered templates stay consistent.
func (r *GormPaymentConditionRepository) Save(ctx context.Context, condition *billing.PaymentCondition) error {
	var model models.PaymentConditionModel
	model.FromDomain(condition)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("condition_id = ?", model.ID).
			Delete(&models.PaymentConditionEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Entries").Save(&model).Error; err != nil {
			return err
		}
		if len(model.Entries) == 0 {
			return nil
		}
		return tx.Create(&model.Entries).Error
	})
}

// Delete removes a payment condition and its entries
func (r *GormPaymentConditionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("condition_id = ?", id).
			Delete(&models.PaymentConditionEntryModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PaymentConditionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
