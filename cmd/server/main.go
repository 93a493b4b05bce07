package main

import (
	"os"
	"os/signal"
	"syscall"

	billingapp "github.com/gestor/backend/internal/application/billing"
	catalogapp "github.com/gestor/backend/internal/application/catalog"
	partnerapp "github.com/gestor/backend/internal/application/partner"
	"github.com/gestor/backend/internal/infrastructure/config"
	"github.com/gestor/backend/internal/infrastructure/logger"
	"github.com/gestor/backend/internal/infrastructure/migration"
	"github.com/gestor/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// application bundles the wired services of the billing back end
type application struct {
	payables    *billingapp.PayableLedgerService
	receivables *billingapp.ReceivableLedgerService
	charges     *billingapp.ChargeService
	conditions  *billingapp.ConditionService
	partners    *partnerapp.PartnerService
	products    *catalogapp.ProductService
}

// services stays alive for the lifetime of the process; transport layers
// attach to it as they are introduced
var services *application

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting gestor backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Bring the schema up to date before serving
	migrator, err := migration.NewFromURL(cfg.Database.DSN(), "migrations", log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Up(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		log.Error("Error closing migrator", zap.Error(err))
	}

	services = buildApplication(db, log)
	log.Info("Application services initialized")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down", zap.String("signal", sig.String()))
}

// buildApplication wires repositories and application services
func buildApplication(db *persistence.Database, log *zap.Logger) *application {
	purchaseInvoiceRepo := persistence.NewGormPurchaseInvoiceRepository(db.DB)
	salesInvoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	installmentRepo := persistence.NewGormInstallmentRepository(db.DB)
	conditionRepo := persistence.NewGormPaymentConditionRepository(db.DB)
	methodRepo := persistence.NewGormPaymentMethodRepository(db.DB)
	chargeRepo := persistence.NewGormStandaloneChargeRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)

	return &application{
		payables:    billingapp.NewPayableLedgerService(purchaseInvoiceRepo, installmentRepo, conditionRepo, log),
		receivables: billingapp.NewReceivableLedgerService(salesInvoiceRepo, installmentRepo, conditionRepo, log),
		charges:     billingapp.NewChargeService(chargeRepo, log),
		conditions:  billingapp.NewConditionService(conditionRepo, methodRepo, log),
		partners:    partnerapp.NewPartnerService(customerRepo, supplierRepo, log),
		products:    catalogapp.NewProductService(productRepo, log),
	}
}
