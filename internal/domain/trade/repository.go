package trade

import (
	"context"

	"github.com/gestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseInvoiceRepository defines the interface for purchase invoice persistence
type PurchaseInvoiceRepository interface {
	// FindByID finds a purchase invoice by its surrogate ID
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseInvoice, error)

	// FindByKey finds a purchase invoice by its composite natural key
	FindByKey(ctx context.Context, key InvoiceKey) (*PurchaseInvoice, error)

	// FindAll finds purchase invoices with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseInvoice, error)

	// ExistsByKey checks whether an invoice with the given key exists
	ExistsByKey(ctx context.Context, key InvoiceKey) (bool, error)

	// Save creates or updates a purchase invoice together with its lines
	Save(ctx context.Context, invoice *PurchaseInvoice) error

	// Delete removes a purchase invoice and its lines
	Delete(ctx context.Context, key InvoiceKey) error
}

// SalesInvoiceRepository defines the interface for sales invoice persistence
type SalesInvoiceRepository interface {
	// FindByID finds a sales invoice by its surrogate ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalesInvoice, error)

	// FindByKey finds a sales invoice by its composite natural key
	FindByKey(ctx context.Context, key InvoiceKey) (*SalesInvoice, error)

	// FindAll finds sales invoices with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesInvoice, error)

	// ExistsByKey checks whether an invoice with the given key exists
	ExistsByKey(ctx context.Context, key InvoiceKey) (bool, error)

	// Save creates or updates a sales invoice together with its lines
	Save(ctx context.Context, invoice *SalesInvoice) error

	// Delete removes a sales invoice and its lines
	Delete(ctx context.Context, key InvoiceKey) error
}
