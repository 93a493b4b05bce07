package persistence

import (
	"context"
	"errors"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/gestor/backend/internal/domain/trade"
	"github.com/gestor/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalesInvoiceRepository implements SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// FindByID finds a sales invoice by its surrogate ID
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesInvoice, error) {
	var model models.SalesInvoiceModel
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

// FindByKey finds a sales invoice by its composite natural key
func (r *GormSalesInvoiceRepository) FindByKey(ctx context.Context, key trade.InvoiceKey) (*trade.SalesInvoice, error) {
	var model models.SalesInvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", orderLinesBySequence).
		Where("number = ? AND model = ? AND series = ? AND customer_id = ?",
			key.Number, key.Model, key.Series, key.PartyID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds sales invoices with filtering
func (r *GormSalesInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesInvoice, error) {
	var invoiceModels []models.SalesInvoiceModel
	query := r.db.WithContext(ctx).Model(&models.SalesInvoiceModel{}).
		Preload("Lines", orderLinesBySequence)
	query = applyInvoiceFilter(query, filter)

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	invoices := make([]trade.SalesInvoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// ExistsByKey checks whether an invoice with the given key exists
func (r *GormSalesInvoiceRepository) ExistsByKey(ctx context.Context, key trade.InvoiceKey) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SalesInvoiceModel{}).
		Where("number = ? AND model = ? AND series = ? AND customer_id = ?",
			key.Number, key.Model, key.Series, key.PartyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a sales invoice together with its lines.
// Lines are replaced wholesale so removed lines do not linger.
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, invoice *trade.SalesInvoice) error {
	var model models.SalesInvoiceModel
	model.FromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", model.ID).
			Delete(&models.SalesInvoiceLineModel{}).Error; err != nil {
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

// Delete removes a sales invoice and its lines
func (r *GormSalesInvoiceRepository) Delete(ctx context.Context, key trade.InvoiceKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.SalesInvoiceModel
		if err := tx.Select("id").
			Where("number = ? AND model = ? AND series = ? AND customer_id = ?",
				key.Number, key.Model, key.Series, key.PartyID).
			First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.Where("invoice_id = ?", model.ID).
			Delete(&models.SalesInvoiceLineModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SalesInvoiceModel{}, "id = ?", model.ID).Error
	})
}
