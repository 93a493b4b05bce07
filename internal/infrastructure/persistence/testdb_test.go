package persistence

import (
	"testing"

	"github.com/gestor/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.PurchaseInvoiceModel{},
		&models.PurchaseInvoiceLineModel{},
		&models.SalesInvoiceModel{},
		&models.SalesInvoiceLineModel{},
		&models.InstallmentModel{},
		&models.PaymentConditionModel{},
		&models.PaymentConditionEntryModel{},
		&models.PaymentMethodModel{},
		&models.StandaloneChargeModel{},
		&models.CustomerModel{},
		&models.SupplierModel{},
		&models.ProductModel{},
	))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
