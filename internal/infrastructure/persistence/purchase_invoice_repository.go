package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/gestor/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseInvoiceRepository implements PurchaseInvoiceRepository using GORM
type GormPurchaseInvoiceRepository struct {
	db *gorm.DB
}

// NewGormPurchaseInvoiceRepository creates a new GormPurchaseInvoiceRepository
func NewGormPurchaseInvoiceRepository(db *gorm.DB) *GormPurchaseInvoiceRepository {
	return &GormPurchaseInvoiceRepository{db: db}
}

// FindByID finds a purchase invoice by its surrogate ID
func (r *GormPurchaseInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseInvoice, error) {
	var model models.PurchaseInvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLinesBySequence).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByKey finds a purchase invoice by its composite natural key
func (r *GormPurchaseInvoiceRepository) FindByKey(ctx context.Context, key trade.InvoiceKey) (*trade.PurchaseInvoice, error) {
	var model models.PurchaseInvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLinesBySequence).
		Where("number = ? AND model = ? AND series = ? AND supplier_id = ?",
			key.Number, key.Model, key.Series, key.PartyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds purchase invoices with filtering
func (r *GormPurchaseInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseInvoice, error) {
	var invoiceModels []models.PurchaseInvoiceModel
	query := r.db.WithContext(ctx).Model(&models.PurchaseInvoiceModel{}).
		Preload("Lines", orderLinesBySequence)
	query = applyInvoiceFilter(query, filter)

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	invoices := make([]trade.PurchaseInvoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// ExistsByKey checks whether an invoice with the given key exists
func (r *GormPurchaseInvoiceRepository) ExistsByKey(ctx context.Context, key trade.InvoiceKey) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PurchaseInvoiceModel{}).
		Where("number = ? AND model = ? AND series = ? AND supplier_id = ?",
			key.Number, key.Model, key.Series, key.PartyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a purchase invoice together with its lines.
// Lines are replaced wholesale so removed lines do not linger.
func (r *GormPurchaseInvoiceRepository) Save(ctx context.Context, invoice *trade.PurchaseInvoice) error {
	var model models.PurchaseInvoiceModel
	model.FromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", model.ID).
			Delete(&models.PurchaseInvoiceLineModel{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Lines").Save(&model).Error; err != nil {
			return err
		}
		if len(model.Lines) == 0 {
			return nil
		}
		return tx.Create(&model.Lines).Error
	})
}

// Delete removes a purchase invoice and its lines
func (r *GormPurchaseInvoiceRepository) Delete(ctx context.Context, key trade.InvoiceKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.PurchaseInvoiceModel
		if err := tx.Select("id").
			Where("number = ? AND model = ? AND series = ? AND supplier_id = ?",
				key.Number, key.Model, key.Series, key.PartyID).
			First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.Where("invoice_id = ?", model.ID).
			Delete(&models.PurchaseInvoiceLineModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PurchaseInvoiceModel{}, "id = ?", model.ID).Error
	})
}

// orderLinesBySequence keeps preloaded invoice lines in authoring order
func orderLinesBySequence(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC")
}

// applyInvoiceFilter applies shared filter conditions to an invoice query
func applyInvoiceFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("number LIKE ?", "%"+filter.Search+"%")
	}

	sortField := ValidateSortField(filter.OrderBy, InvoiceSortFields, "created_at")
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
