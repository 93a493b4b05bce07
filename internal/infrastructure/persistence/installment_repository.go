package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor/backend/internal/domain/billing"
	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/gestor/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const installmentKeyClause = "kind = ? AND invoice_number = ? AND invoice_model = ? AND invoice_series = ? AND party_id = ?"

// GormInstallmentRepository implements InstallmentRepository using GORM
type GormInstallmentRepository struct {
	db *gorm.DB
}

// NewGormInstallmentRepository creates a new GormInstallmentRepository
func NewGormInstallmentRepository(db *gorm.DB) *GormInstallmentRepository {
	return &GormInstallmentRepository{db: db}
}

// FindByID finds an installment by its surrogate ID
func (r *GormInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoiceKey finds the installment batch of an invoice, ordered by
// installment number
func (r *GormInstallmentRepository) FindByInvoiceKey(ctx context.Context, kind billing.InstallmentKind, key trade.InvoiceKey) ([]billing.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where(installmentKeyClause, kind.String(), key.Number, key.Model, key.Series, key.PartyID).
		Order("number ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	installments := make([]billing.Installment, len(installmentModels))
	for i, model := range installmentModels {
		installments[i] = *model.ToDomain()
	}
	return installments, nil
}

// FindByStatus finds installments of one ledger by status
func (r *GormInstallmentRepository) FindByStatus(ctx context.Context, kind billing.InstallmentKind, status billing.InstallmentStatus, filter shared.Filter) ([]billing.Installment, error) {
	var installmentModels []models.InstallmentModel
	query := r.db.WithContext(ctx).Model(&models.InstallmentModel{}).
		Where("kind = ? AND status = ?", kind.String(), status.String())
	query = r.applyFilter(query, filter)

	if err := query.Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	installments := make([]billing.Installment, len(installmentModels))
	for i, model := range installmentModels {
		installments[i] = *model.ToDomain()
	}
	return installments, nil
}

// ReplaceForInvoice atomically discards the previous batch for the invoice
// key and inserts the new one
func (r *GormInstallmentRepository) ReplaceForInvoice(ctx context.Context, kind billing.InstallmentKind, key trade.InvoiceKey, installments []*billing.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(installmentKeyClause, kind.String(), key.Number, key.Model, key.Series, key.PartyID).
			Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}
		if len(installments) == 0 {
			return nil
		}
		batch := make([]models.InstallmentModel, len(installments))
		for i, inst := range installments {
			batch[i].FromDomain(inst)
		}
		return tx.Create(&batch).Error
	})
}

// DeleteForInvoice removes the whole batch for an invoice key
func (r *GormInstallmentRepository) DeleteForInvoice(ctx context.Context, kind billing.InstallmentKind, key trade.InvoiceKey) error {
	return r.db.WithContext(ctx).
		Where(installmentKeyClause, kind.String(), key.Number, key.Model, key.Series, key.PartyID).
		Delete(&models.InstallmentModel{}).Error
}

// Save creates or updates an installment
func (r *GormInstallmentRepository) Save(ctx context.Context, installment *billing.Installment) error {
	var model models.InstallmentModel
	model.FromDomain(installment)
	return r.db.WithContext(ctx).Save(&model).Error
}

// SaveWithLock saves the installment with optimistic locking
func (r *GormInstallmentRepository) SaveWithLock(ctx context.Context, installment *billing.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.InstallmentModel
		if err := tx.Select("version").Where("id = ?", installment.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				var model models.InstallmentModel
				model.FromDomain(installment)
				return tx.Create(&model).Error
			}
			return err
		}

		// The domain aggregate already incremented its version
		expectedVersion := installment.GetVersion() - 1
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		var model models.InstallmentModel
		model.FromDomain(installment)
		result := tx.Model(&model).
			Where("id = ? AND version = ?", installment.GetID(), expectedVersion).
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
func (r *GormInstallmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("invoice_number LIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, InstallmentSortFields, "due_date")
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
