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

// GormStandaloneChargeRepository implements StandaloneChargeRepository using GORM
type GormStandaloneChargeRepository struct {
	db *gorm.DB
}

// NewGormStandaloneChargeRepository creates a new GormStandaloneChargeRepository
func NewGormStandaloneChargeRepository(db *gorm.DB) *GormStandaloneChargeRepository {
	return &GormStandaloneChargeRepository{db: db}
}

// FindByID finds a charge by ID
func (r *GormStandaloneChargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.StandaloneCharge, error) {
	var model models.StandaloneChargeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStatus finds charges by status
func (r *GormStandaloneChargeRepository) FindByStatus(ctx context.Context, status billing.ChargeStatus, filter shared.Filter) ([]billing.StandaloneCharge, error) {
	var chargeModels []models.StandaloneChargeModel
	query := r.db.WithContext(ctx).Model(&models.StandaloneChargeModel{}).
		Where("status = ?", status.String())
	query = r.applyFilter(query, filter)

	if err := query.Find(&chargeModels).Error; err != nil {
		return nil, err
	}
	charges := make([]billing.StandaloneCharge, len(chargeModels))
	for i, model := range chargeModels {
		charges[i] = *model.ToDomain()
	}
	return charges, nil
}

// FindAll finds charges with filtering
func (r *GormStandaloneChargeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.StandaloneCharge, error) {
	var chargeModels []models.StandaloneChargeModel
	query := r.db.WithContext(ctx).Model(&models.StandaloneChargeModel{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&chargeModels).Error; err != nil {
		return nil, err
	}
	charges := make([]billing.StandaloneCharge, len(chargeModels))
	for i, model := range chargeModels {
		charges[i] = *model.ToDomain()
	}
	return charges, nil
}

// Save creates or updates a charge
func (r *GormStandaloneChargeRepository) Save(ctx context.Context, charge *billing.StandaloneCharge) error {
	var model models.StandaloneChargeModel
	model.FromDomain(charge)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveWithLock saves the charge with optimistic locking
func (r *GormStandaloneChargeRepository) SaveWithLock(ctx context.Context, charge *billing.StandaloneCharge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.StandaloneChargeModel
		if err := tx.Select("version").Where("id = ?", charge.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				var model models.StandaloneChargeModel
				model.FromDomain(charge)
				return tx.Create(&model).Error
			}
			return err
		}

		// The domain aggregate already incremented its version
		expectedVersion := charge.GetVersion() - 1
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		var model models.StandaloneChargeModel
		model.FromDomain(charge)
		result := tx.Model(&model).
			Where("id = ? AND version = ?", charge.GetID(), expectedVersion).
			Save(&model)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// applyFilter applies filter conditions to query
func (r *GormStandaloneChargeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, StandaloneChargeSortFields, "due_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	return query
}
